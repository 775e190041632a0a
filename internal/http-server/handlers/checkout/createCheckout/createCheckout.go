package createCheckout

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
	"eventCheckout/internal/lib/docid"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/lib/pricing"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

type CheckoutRequest struct {
	EventID            string                `json:"event_id" validate:"required"`
	Type               string                `json:"checkout_type" validate:"required,oneof=acquire voucher admin"`
	LegalEntity        string                `json:"legal_entity" validate:"required,oneof=pf pj"`
	Billing            models.BillingDetails `json:"billing_details"`
	Quantity           int                   `json:"quantity" validate:"required,gt=0"`
	ComplimentarySlots int                   `json:"complimentary_slots"`
	PaymentMethod      string                `json:"payment_method" validate:"required,oneof=transfer commitment"`
	RegisterMyself     bool                  `json:"register_myself"`
	Attendee           *models.Attendee      `json:"attendee,omitempty"`
}

type CheckoutResponse struct {
	response.Response
	DocumentID string           `json:"document_id"`
	Checkout   *models.Checkout `json:"checkout"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckoutCreator
type CheckoutCreator interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpsertCheckout(ctx context.Context, c *models.Checkout) error
	CreateVoucher(ctx context.Context, v *models.Voucher) error
	CreateRegistration(ctx context.Context, reg *models.Registration) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	NotifyCheckoutCreated(c *models.Checkout)
}

// New returns a handler that creates (or recreates) the buyer's checkout for
// an event. The checkout id is the composite event_user document id, so a
// retry of the same purchase lands on the same row. The buyer identity comes
// from the token, never from the body.
func New(log *slog.Logger, creator CheckoutCreator, notifier Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.createCheckout.New"

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

		var req CheckoutRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("event_id", req.EventID))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		checkoutType := models.CheckoutType(req.Type)
		if (checkoutType == models.CheckoutTypeAdmin || req.ComplimentarySlots > 0) && !identity.Admin {
			log.Warn("non-admin attempted privileged checkout",
				slog.String("user_id", identity.UserID),
			)
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		if err := req.Billing.Validate(models.LegalEntity(req.LegalEntity)); err != nil {
			log.Error("invalid billing details", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		event, err := creator.GetEvent(r.Context(), req.EventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found", slog.String("event_id", req.EventID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create checkout"))
			return
		}

		if event.Status != models.EventStatusOpen {
			log.Info("event is not open", slog.String("event_id", event.ID))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("event is not open for registration"))
			return
		}

		amount, err := pricing.Total(event.PriceTiers, req.Quantity)
		if err != nil {
			log.Error("failed to price checkout", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		now := time.Now()
		checkout := &models.Checkout{
			ID:                 docid.Compose(event.ID, identity.UserID),
			EventID:            event.ID,
			UserID:             identity.UserID,
			Type:               checkoutType,
			LegalEntity:        models.LegalEntity(req.LegalEntity),
			Billing:            req.Billing,
			Quantity:           req.Quantity,
			ComplimentarySlots: req.ComplimentarySlots,
			AmountInCents:      amount,
			Payment: &models.Payment{
				Method: models.PaymentMethod(req.PaymentMethod),
				Status: models.PaymentStatusPending,
			},
			Status:    models.CheckoutStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if checkoutType == models.CheckoutTypeVoucher {
			checkout.VoucherCode = uuid.NewString()
		}

		if err := creator.UpsertCheckout(r.Context(), checkout); err != nil {
			log.Error("failed to save checkout", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create checkout"))
			return
		}

		if checkout.VoucherCode != "" {
			voucher := &models.Voucher{
				Code:       checkout.VoucherCode,
				CheckoutID: checkout.ID,
				EventID:    checkout.EventID,
				Active:     false,
				CreatedAt:  now,
				UpdatedAt:  now,
			}

			if err := creator.CreateVoucher(r.Context(), voucher); err != nil {
				log.Error("failed to create voucher", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create checkout"))
				return
			}
		}

		if req.RegisterMyself {
			attendee := models.Attendee{
				Name:  identity.Name,
				Email: identity.Email,
			}
			if req.Attendee != nil {
				attendee = *req.Attendee
			}

			reg := &models.Registration{
				ID:         docid.Compose(checkout.EventID, identity.UserID),
				EventID:    checkout.EventID,
				CheckoutID: checkout.ID,
				UserID:     identity.UserID,
				CreatedBy:  models.CreatorBuyer,
				Attendee:   attendee,
				Status:     models.RegistrationStatusPending,
				CreatedAt:  now,
				UpdatedAt:  now,
			}

			if err := creator.CreateRegistration(r.Context(), reg); err != nil {
				if !errors.Is(err, storage.ErrAlreadyRegistered) {
					log.Error("failed to create buyer registration", sl.Err(err))
					render.Status(r, http.StatusInternalServerError)
					render.JSON(w, r, response.Error("failed to create checkout"))
					return
				}
				log.Info("buyer already registered", slog.String("checkout_id", checkout.ID))
			}
		}

		notifier.NotifyCheckoutCreated(checkout)

		log.Info("checkout created",
			slog.String("id", checkout.ID),
			slog.Int64("amount_in_cents", checkout.AmountInCents),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, CheckoutResponse{
			Response:   response.OK(),
			DocumentID: checkout.ID,
			Checkout:   checkout,
		})
	}
}
