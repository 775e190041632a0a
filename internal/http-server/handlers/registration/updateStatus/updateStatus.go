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
	"eventCheckout/internal/lib/auth"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ok cancelled"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationStatusSetter
type RegistrationStatusSetter interface {
	GetRegistration(ctx context.Context, id string) (*models.Registration, error)
	ActivateRegistration(ctx context.Context, id string) error
	CancelRegistration(ctx context.Context, id string) error
}

// New returns the handler that activates or cancels a registration.
// Activation is the moment a slot is consumed; the storage layer re-checks
// availability and the checkout state inside its transaction, so a full
// checkout comes back here as a conflict.
func New(log *slog.Logger, setter RegistrationStatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.updateStatus.New"

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

		reg, err := setter.GetRegistration(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrRegistrationNotFound) {
				log.Info("registration not found", slog.String("id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
				return
			}

			log.Error("failed to get registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update registration status"))
			return
		}

		if reg.UserID != identity.UserID && !identity.Admin {
			log.Warn("forbidden registration status change",
				slog.String("id", id),
				slog.String("user_id", identity.UserID),
			)
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		if req.Status == string(models.RegistrationStatusOK) {
			err = setter.ActivateRegistration(r.Context(), id)
		} else {
			err = setter.CancelRegistration(r.Context(), id)
		}

		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNoAvailableSlots):
				log.Info("no available slots", slog.String("id", id))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no available slots on the checkout"))
			case errors.Is(err, storage.ErrCheckoutInactive):
				log.Info("checkout inactive", slog.String("id", id))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("checkout is not active"))
			default:
				log.Error("failed to update registration status", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update registration status"))
			}
			return
		}

		log.Info("registration status updated",
			slog.String("id", id),
			slog.String("status", req.Status),
		)

		render.JSON(w, r, response.OK())
	}
}
