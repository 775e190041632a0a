package exportEvent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/export"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReportSource
type ReportSource interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListCheckoutsByEvent(ctx context.Context, eventID string) ([]models.Checkout, error)
	ListRegistrationsByEvent(ctx context.Context, eventID string) ([]models.Registration, error)
}

// New returns the admin handler that streams the event's registration report
// as an xlsx download. One row per registration, joined with its checkout's
// billing and payment data.
func New(log *slog.Logger, source ReportSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.exportEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		event, err := source.GetEvent(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found", slog.String("id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to export report"))
			return
		}

		checkouts, err := source.ListCheckoutsByEvent(r.Context(), id)
		if err != nil {
			log.Error("failed to list checkouts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to export report"))
			return
		}

		regs, err := source.ListRegistrationsByEvent(r.Context(), id)
		if err != nil {
			log.Error("failed to list registrations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to export report"))
			return
		}

		byID := make(map[string]*models.Checkout, len(checkouts))
		for i := range checkouts {
			byID[checkouts[i].ID] = &checkouts[i]
		}

		rows := make([][]string, 0, len(regs))
		for i := range regs {
			reg := &regs[i]
			rows = append(rows, export.Row(event, byID[reg.CheckoutID], reg))
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "inscricoes_"+event.ID+".xlsx"))

		if err := export.WriteXLSX(w, rows); err != nil {
			log.Error("failed to write spreadsheet", sl.Err(err))
			return
		}

		log.Info("report exported",
			slog.String("event_id", id),
			slog.Int("rows", len(rows)),
		)
	}
}
