package updateStatus

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed approved paid refunded deleted"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckoutStatusSetter
type CheckoutStatusSetter interface {
	SetCheckoutStatus(ctx context.Context, id string, to models.CheckoutStatus) error
}

// New returns the admin handler that moves a checkout through its lifecycle.
// The storage layer guards the transition set and cascades the registration
// updates in the same transaction, so an illegal move comes back as a
// conflict with nothing written.
func New(log *slog.Logger, setter CheckoutStatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.updateStatus.New"

		log := log.With(
			slog.String("op", op),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("checkout id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("checkout id is required"))
			return
		}

		var req StatusRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		err := setter.SetCheckoutStatus(r.Context(), id, models.CheckoutStatus(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrCheckoutNotFound):
				log.Info("checkout not found", slog.String("id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout not found"))
			case errors.Is(err, models.ErrInvalidTransition):
				log.Info("invalid transition",
					slog.String("id", id),
					slog.String("to", req.Status),
				)
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("invalid checkout status transition"))
			default:
				log.Error("failed to update checkout status", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update checkout status"))
			}
			return
		}

		log.Info("checkout status updated",
			slog.String("id", id),
			slog.String("status", req.Status),
		)

		render.JSON(w, r, response.OK())
	}
}
