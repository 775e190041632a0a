package redeemVoucher

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/auth"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

type RedeemRequest struct {
	Name            string `json:"name" validate:"required"`
	CPF             string `json:"cpf" validate:"required"`
	Phone           string `json:"phone"`
	Email           string `json:"email" validate:"required,email"`
	ConsentImageUse bool   `json:"consent_image_use"`
	ConsentContact  bool   `json:"consent_contact"`
}

type RedeemResponse struct {
	response.Response
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VoucherRedeemer
type VoucherRedeemer interface {
	RedeemVoucher(ctx context.Context, code string, reg *models.Registration) error
}

// New returns the handler that redeems a voucher code into a registration on
// the issuing checkout. The storage layer locks the voucher, rejects inactive
// codes and fills the checkout and event references along with the
// registration's composite document id.
func New(log *slog.Logger, redeemer VoucherRedeemer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.voucher.redeemVoucher.New"

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

		code := chi.URLParam(r, "id")
		if code == "" {
			log.Error("voucher code is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("voucher code is required"))
			return
		}

		var req RedeemRequest
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

		now := time.Now()
		reg := &models.Registration{
			UserID:    identity.UserID,
			CreatedBy: models.CreatorAttendee,
			Attendee: models.Attendee{
				Name:            req.Name,
				CPF:             req.CPF,
				Phone:           req.Phone,
				Email:           req.Email,
				ConsentImageUse: req.ConsentImageUse,
				ConsentContact:  req.ConsentContact,
			},
			Status:    models.RegistrationStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := redeemer.RedeemVoucher(r.Context(), code, reg); err != nil {
			switch {
			case errors.Is(err, storage.ErrVoucherNotFound):
				log.Info("voucher not found", slog.String("code", code))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("voucher not found"))
			case errors.Is(err, storage.ErrVoucherInactive):
				log.Info("voucher is inactive", slog.String("code", code))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("voucher is not active"))
			case errors.Is(err, storage.ErrAlreadyRegistered):
				log.Info("attendee already registered", slog.String("code", code))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("attendee is already registered for this event"))
			default:
				log.Error("failed to redeem voucher", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to redeem voucher"))
			}
			return
		}

		log.Info("voucher redeemed",
			slog.String("code", code),
			slog.String("registration_id", reg.ID),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RedeemResponse{
			Response:     response.OK(),
			Registration: reg,
		})
	}
}
