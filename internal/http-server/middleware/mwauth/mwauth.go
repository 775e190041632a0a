package mwauth

import (
	"log/slog"
	"net/http"
	"strings"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/auth"
	"eventCheckout/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

// New validates the bearer token and stores the authenticated identity in the
// request context. The identity's user id always wins over any user id the
// client sends in a request body.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid authorization header"))
				return
			}

			identity, err := auth.ParseToken(token, secret)
			if err != nil {
				log.Warn("token rejected", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			ctx := auth.ToContext(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// Admin allows only identities carrying the admin flag. Must run after New.
func Admin(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.FromContext(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			if !identity.Admin {
				log.Warn("admin route denied", slog.String("user_id", identity.UserID))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin access required"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
