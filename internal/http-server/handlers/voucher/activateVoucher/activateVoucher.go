package activateVoucher

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/storage"
)

type ActivateRequest struct {
	Active *bool `json:"active" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VoucherActivator
type VoucherActivator interface {
	SetVoucherActive(ctx context.Context, code string, active bool) error
}

// New returns the admin handler that flips a voucher's active flag. Vouchers
// are created inactive and only become redeemable here, typically after the
// issuing checkout is paid.
func New(log *slog.Logger, activator VoucherActivator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.voucher.activateVoucher.New"

		log := log.With(
			slog.String("op", op),
		)

		code := chi.URLParam(r, "id")
		if code == "" {
			log.Error("voucher code is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("voucher code is required"))
			return
		}

		var req ActivateRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if req.Active == nil {
			log.Error("active flag is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field active is required"))
			return
		}

		err := activator.SetVoucherActive(r.Context(), code, *req.Active)
		if err != nil {
			if errors.Is(err, storage.ErrVoucherNotFound) {
				log.Info("voucher not found", slog.String("code", code))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("voucher not found"))
				return
			}

			log.Error("failed to update voucher", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update voucher"))
			return
		}

		log.Info("voucher updated",
			slog.String("code", code),
			slog.Bool("active", *req.Active),
		)

		render.JSON(w, r, response.OK())
	}
}
