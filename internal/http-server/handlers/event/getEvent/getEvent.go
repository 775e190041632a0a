package getEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventResponse struct {
	response.Response
	Event          *models.Event `json:"event"`
	AvailableSlots int           `json:"available_slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CountActiveRegistrations(ctx context.Context, eventID string) (int, error)
}

func New(log *slog.Logger, getter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		event, err := getter.GetEvent(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))
			return
		}

		active, err := getter.CountActiveRegistrations(r.Context(), eventID)
		if err != nil {
			log.Error("failed to count registrations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))
			return
		}

		log.Info("event retrieved", slog.Int("active_registrations", active))

		render.JSON(w, r, EventResponse{
			Response:       response.OK(),
			Event:          event,
			AvailableSlots: event.MaxParticipants - active,
		})
	}
}
