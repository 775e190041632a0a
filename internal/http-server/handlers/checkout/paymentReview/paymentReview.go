package paymentReview

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

type ReviewRequest struct {
	Action string `json:"action" validate:"required,oneof=validate invalidate"`
}

type ReviewResponse struct {
	response.Response
	Payment *models.Payment `json:"payment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentReviewer
type PaymentReviewer interface {
	AdvancePayment(ctx context.Context, id string) (*models.Payment, error)
	RetreatPayment(ctx context.Context, id string) (*models.Payment, error)
}

// New returns the admin handler that reviews a commitment payment. Validation
// moves the nested status one step forward, invalidation one step back.
func New(log *slog.Logger, reviewer PaymentReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.paymentReview.New"

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

		var req ReviewRequest
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

		var (
			payment *models.Payment
			err     error
		)
		if req.Action == "validate" {
			payment, err = reviewer.AdvancePayment(r.Context(), id)
		} else {
			payment, err = reviewer.RetreatPayment(r.Context(), id)
		}

		if err != nil {
			switch {
			case errors.Is(err, storage.ErrCheckoutNotFound):
				log.Info("checkout not found", slog.String("id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout not found"))
			case errors.Is(err, storage.ErrNoPayment):
				log.Info("checkout has no payment", slog.String("id", id))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("checkout has no payment document"))
			case errors.Is(err, models.ErrPaymentAlreadyPaid),
				errors.Is(err, models.ErrPaymentAlreadyPending):
				log.Info("payment already at boundary", slog.String("id", id))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				log.Error("failed to review payment", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to review payment"))
			}
			return
		}

		log.Info("payment reviewed",
			slog.String("id", id),
			slog.String("action", req.Action),
			slog.String("status", string(payment.Status)),
		)

		render.JSON(w, r, ReviewResponse{
			Response: response.OK(),
			Payment:  payment,
		})
	}
}
