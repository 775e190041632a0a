package deleteRegistration

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/auth"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationDeleter
type RegistrationDeleter interface {
	GetRegistration(ctx context.Context, id string) (*models.Registration, error)
	DeleteRegistration(ctx context.Context, id string) error
}

// New returns the handler that hard-deletes a registration. Only one that
// never consumed a slot may be removed; a confirmed registration has to be
// cancelled instead.
func New(log *slog.Logger, deleter RegistrationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.deleteRegistration.New"

		log := log.With(
			slog.String("op", op),
		)

		identity, ok := auth.FromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("registration id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("registration id is required"))
			return
		}

		reg, err := deleter.GetRegistration(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrRegistrationNotFound) {
				log.Info("registration not found", slog.String("id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
				return
			}

			log.Error("failed to get registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete registration"))
			return
		}

		if reg.UserID != identity.UserID && !identity.Admin {
			log.Warn("forbidden registration delete",
				slog.String("id", id),
				slog.String("user_id", identity.UserID),
			)
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		if reg.Status == models.RegistrationStatusOK && !identity.Admin {
			log.Info("registration is confirmed",
				slog.String("id", id),
			)
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("a confirmed registration must be cancelled, not deleted"))
			return
		}

		if err := deleter.DeleteRegistration(r.Context(), id); err != nil {
			log.Error("failed to delete registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete registration"))
			return
		}

		log.Info("registration deleted", slog.String("id", id))

		render.JSON(w, r, response.OK())
	}
}
