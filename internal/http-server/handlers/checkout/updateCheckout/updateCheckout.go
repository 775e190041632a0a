package updateCheckout

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
	"eventCheckout/internal/lib/pricing"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

type UpdateRequest struct {
	LegalEntity   string                `json:"legal_entity" validate:"required,oneof=pf pj"`
	Billing       models.BillingDetails `json:"billing_details"`
	Quantity      int                   `json:"quantity" validate:"required,gt=0"`
	PaymentMethod string                `json:"payment_method" validate:"required,oneof=transfer commitment"`
}

type UpdateResponse struct {
	response.Response
	Checkout *models.Checkout `json:"checkout"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckoutUpdater
type CheckoutUpdater interface {
	GetCheckout(ctx context.Context, id string) (*models.Checkout, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpdateCheckout(ctx context.Context, c *models.Checkout) error
}

// New returns a handler that edits a pending checkout. The amount is always
// recomputed from the event's price table; the body's quantity is the only
// pricing input a buyer controls.
func New(log *slog.Logger, updater CheckoutUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.updateCheckout.New"

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

		if err := req.Billing.Validate(models.LegalEntity(req.LegalEntity)); err != nil {
			log.Error("invalid billing details", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		checkout, err := updater.GetCheckout(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrCheckoutNotFound) {
				log.Info("checkout not found", slog.String("id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout not found"))
				return
			}

			log.Error("failed to get checkout", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update checkout"))
			return
		}

		if checkout.UserID != identity.UserID && !identity.Admin {
			log.Warn("forbidden checkout update",
				slog.String("id", id),
				slog.String("user_id", identity.UserID),
			)
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		if checkout.Status != models.CheckoutStatusPending && !identity.Admin {
			log.Info("checkout is not editable",
				slog.String("id", id),
				slog.String("status", string(checkout.Status)),
			)
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("only a pending checkout can be edited"))
			return
		}

		event, err := updater.GetEvent(r.Context(), checkout.EventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update checkout"))
			return
		}

		amount, err := pricing.Total(event.PriceTiers, req.Quantity)
		if err != nil {
			log.Error("failed to price checkout", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		checkout.LegalEntity = models.LegalEntity(req.LegalEntity)
		checkout.Billing = req.Billing
		checkout.Quantity = req.Quantity
		checkout.AmountInCents = amount
		checkout.UpdatedAt = time.Now()
		if checkout.Payment != nil {
			checkout.Payment.Method = models.PaymentMethod(req.PaymentMethod)
		} else {
			checkout.Payment = &models.Payment{
				Method: models.PaymentMethod(req.PaymentMethod),
				Status: models.PaymentStatusPending,
			}
		}

		if err := updater.UpdateCheckout(r.Context(), checkout); err != nil {
			log.Error("failed to save checkout", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update checkout"))
			return
		}

		log.Info("checkout updated",
			slog.String("id", id),
			slog.Int64("amount_in_cents", amount),
		)

		render.JSON(w, r, UpdateResponse{
			Response: response.OK(),
			Checkout: checkout,
		})
	}
}
