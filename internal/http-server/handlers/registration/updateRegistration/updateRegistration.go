package updateRegistration

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

type UpdateRequest struct {
	Name            string `json:"name" validate:"required"`
	CPF             string `json:"cpf" validate:"required"`
	Phone           string `json:"phone"`
	Email           string `json:"email" validate:"required,email"`
	ConsentImageUse bool   `json:"consent_image_use"`
	ConsentContact  bool   `json:"consent_contact"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationUpdater
type RegistrationUpdater interface {
	GetRegistration(ctx context.Context, id string) (*models.Registration, error)
	UpdateRegistrationAttendee(ctx context.Context, id string, attendee models.Attendee) error
}

// New returns the handler that rewrites the attendee form of a registration.
func New(log *slog.Logger, updater RegistrationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.updateRegistration.New"

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

		var req UpdateRequest
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

		reg, err := updater.GetRegistration(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrRegistrationNotFound) {
				log.Info("registration not found", slog.String("id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
				return
			}

			log.Error("failed to get registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update registration"))
			return
		}

		if reg.UserID != identity.UserID && !identity.Admin {
			log.Warn("forbidden registration update",
				slog.String("id", id),
				slog.String("user_id", identity.UserID),
			)
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		attendee := models.Attendee{
			Name:            req.Name,
			CPF:             req.CPF,
			Phone:           req.Phone,
			Email:           req.Email,
			ConsentImageUse: req.ConsentImageUse,
			ConsentContact:  req.ConsentContact,
		}

		if err := updater.UpdateRegistrationAttendee(r.Context(), id, attendee); err != nil {
			log.Error("failed to update registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update registration"))
			return
		}

		log.Info("registration updated", slog.String("id", id))

		render.JSON(w, r, response.OK())
	}
}
