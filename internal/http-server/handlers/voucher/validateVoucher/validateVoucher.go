package validateVoucher

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

type ValidateResponse struct {
	response.Response
	EventID string `json:"event_id"`
	Active  bool   `json:"active"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VoucherGetter
type VoucherGetter interface {
	GetVoucher(ctx context.Context, code string) (*models.Voucher, error)
}

// New returns the public handler that tells whether a voucher code can be
// redeemed. A missing code is indistinguishable from an unknown one.
func New(log *slog.Logger, getter VoucherGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.voucher.validateVoucher.New"

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

		voucher, err := getter.GetVoucher(r.Context(), code)
		if err != nil {
			if errors.Is(err, storage.ErrVoucherNotFound) {
				log.Info("voucher not found", slog.String("code", code))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("voucher not found"))
				return
			}

			log.Error("failed to get voucher", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to validate voucher"))
			return
		}

		if !voucher.Active {
			log.Info("voucher is not active", slog.String("code", code))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("voucher is not active"))
			return
		}

		log.Info("voucher validated",
			slog.String("code", code),
			slog.Bool("active", voucher.Active),
		)

		render.JSON(w, r, ValidateResponse{
			Response: response.OK(),
			EventID:  voucher.EventID,
			Active:   voucher.Active,
		})
	}
}
