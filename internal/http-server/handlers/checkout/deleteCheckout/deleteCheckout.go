package deleteCheckout

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckoutDeleter
type CheckoutDeleter interface {
	GetCheckout(ctx context.Context, id string) (*models.Checkout, error)
	SetCheckoutStatus(ctx context.Context, id string, to models.CheckoutStatus) error
}

// New returns a handler that soft-deletes a checkout. The row stays in place
// with status deleted and its registrations are invalidated by the status
// cascade; an admin can reactivate it later. Buyers may only delete their own
// pending checkout.
func New(log *slog.Logger, deleter CheckoutDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.deleteCheckout.New"

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

		checkout, err := deleter.GetCheckout(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrCheckoutNotFound) {
				log.Info("checkout not found", slog.String("id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout not found"))
				return
			}

			log.Error("failed to get checkout", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete checkout"))
			return
		}

		if !identity.Admin {
			if checkout.UserID != identity.UserID {
				log.Warn("forbidden checkout delete",
					slog.String("id", id),
					slog.String("user_id", identity.UserID),
				)
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
				return
			}

			if checkout.Status != models.CheckoutStatusPending {
				log.Info("checkout is not pending",
					slog.String("id", id),
					slog.String("status", string(checkout.Status)),
				)
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("only a pending checkout can be deleted"))
				return
			}
		}

		err = deleter.SetCheckoutStatus(r.Context(), id, models.CheckoutStatusDeleted)
		if err != nil {
			if errors.Is(err, models.ErrInvalidTransition) {
				log.Info("invalid transition", slog.String("id", id))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("checkout cannot be deleted in its current status"))
				return
			}

			log.Error("failed to delete checkout", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete checkout"))
			return
		}

		log.Info("checkout deleted", slog.String("id", id))

		render.JSON(w, r, response.OK())
	}
}
