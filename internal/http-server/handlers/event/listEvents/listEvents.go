package listEvents

import (
	"context"
	"log/slog"
	"net/http"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"

	"github.com/go-chi/render"
)

type ListResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
}

// New returns a handler that lists every event, open or not.
func New(log *slog.Logger, lister EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log := log.With(
			slog.String("op", op),
		)

		events, err := lister.ListEvents(r.Context())
		if err != nil {
			log.Error("failed to list events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list events"))
			return
		}

		log.Info("events listed", slog.Int("count", len(events)))

		render.JSON(w, r, ListResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}
