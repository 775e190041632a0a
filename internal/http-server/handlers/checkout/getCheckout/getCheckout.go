package getCheckout

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

type CheckoutResponse struct {
	response.Response
	Checkout      *models.Checkout      `json:"checkout"`
	Registrations []models.Registration `json:"registrations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckoutGetter
type CheckoutGetter interface {
	GetCheckout(ctx context.Context, id string) (*models.Checkout, error)
	ListRegistrationsByCheckout(ctx context.Context, checkoutID string) ([]models.Registration, error)
}

// New returns a handler that fetches a checkout with its registrations.
// Only the owner and admins may read it.
func New(log *slog.Logger, getter CheckoutGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.getCheckout.New"

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
			log.Error("checkout id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("checkout id is required"))
			return
		}

		checkout, err := getter.GetCheckout(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrCheckoutNotFound) {
				log.Info("checkout not found", slog.String("id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout not found"))
				return
			}

			log.Error("failed to get checkout", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get checkout"))
			return
		}

		if checkout.UserID != identity.UserID && !identity.Admin {
			log.Warn("forbidden checkout access",
				slog.String("id", id),
				slog.String("user_id", identity.UserID),
			)
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		regs, err := getter.ListRegistrationsByCheckout(r.Context(), id)
		if err != nil {
			log.Error("failed to list registrations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get checkout"))
			return
		}

		log.Info("checkout fetched", slog.String("id", id))

		render.JSON(w, r, CheckoutResponse{
			Response:      response.OK(),
			Checkout:      checkout,
			Registrations: regs,
		})
	}
}
