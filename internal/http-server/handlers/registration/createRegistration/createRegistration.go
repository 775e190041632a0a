package createRegistration

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/auth"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

type RegistrationRequest struct {
	CheckoutID string `json:"checkout_id" validate:"required"`
	Attendee   struct {
		Name            string `json:"name" validate:"required"`
		CPF             string `json:"cpf" validate:"required"`
		Phone           string `json:"phone"`
		Email           string `json:"email" validate:"required,email"`
		ConsentImageUse bool   `json:"consent_image_use"`
		ConsentContact  bool   `json:"consent_contact"`
	} `json:"attendee" validate:"required"`
}

type RegistrationResponse struct {
	response.Response
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationCreator
type RegistrationCreator interface {
	GetCheckout(ctx context.Context, id string) (*models.Checkout, error)
	CreateRegistration(ctx context.Context, reg *models.Registration) error
}

// New returns the handler that files an attendee form against a checkout.
// The registration starts pending; a slot is only consumed on activation.
func New(log *slog.Logger, creator RegistrationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.createRegistration.New"

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

		var req RegistrationRequest
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

		checkout, err := creator.GetCheckout(r.Context(), req.CheckoutID)
		if err != nil {
			if errors.Is(err, storage.ErrCheckoutNotFound) {
				log.Info("checkout not found", slog.String("checkout_id", req.CheckoutID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout not found"))
				return
			}

			log.Error("failed to get checkout", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create registration"))
			return
		}

		if !checkout.Active() {
			log.Info("checkout is inactive", slog.String("checkout_id", checkout.ID))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("checkout is not active"))
			return
		}

		role := models.CreatorAttendee
		switch {
		case identity.Admin:
			role = models.CreatorAdmin
		case identity.UserID == checkout.UserID:
			role = models.CreatorBuyer
		}

		now := time.Now()
		reg := &models.Registration{
			ID:         uuid.NewString(),
			EventID:    checkout.EventID,
			CheckoutID: checkout.ID,
			UserID:     identity.UserID,
			CreatedBy:  role,
			Attendee: models.Attendee{
				Name:            req.Attendee.Name,
				CPF:             req.Attendee.CPF,
				Phone:           req.Attendee.Phone,
				Email:           req.Attendee.Email,
				ConsentImageUse: req.Attendee.ConsentImageUse,
				ConsentContact:  req.Attendee.ConsentContact,
			},
			Status:    models.RegistrationStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := creator.CreateRegistration(r.Context(), reg); err != nil {
			if errors.Is(err, storage.ErrAlreadyRegistered) {
				log.Info("attendee already registered",
					slog.String("checkout_id", checkout.ID),
					slog.String("cpf", req.Attendee.CPF),
				)
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("attendee is already registered for this event"))
				return
			}

			log.Error("failed to create registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create registration"))
			return
		}

		log.Info("registration created",
			slog.String("id", reg.ID),
			slog.String("checkout_id", checkout.ID),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RegistrationResponse{
			Response:     response.OK(),
			Registration: reg,
		})
	}
}
