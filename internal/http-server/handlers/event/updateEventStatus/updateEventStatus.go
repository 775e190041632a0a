package updateEventStatus

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
	"github.com/go-playground/validator/v10"
)

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed canceled"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventStatusSetter
type EventStatusSetter interface {
	SetEventStatus(ctx context.Context, id string, status models.EventStatus) error
}

// New returns a handler that opens, closes or cancels an event.
// The route is admin-only; the middleware enforces that.
func New(log *slog.Logger, setter EventStatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEventStatus.New"

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

		var req StatusRequest
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

		err := setter.SetEventStatus(r.Context(), id, models.EventStatus(req.Status))
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found", slog.String("id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to update event status", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event status"))
			return
		}

		log.Info("event status updated",
			slog.String("id", id),
			slog.String("status", req.Status),
		)

		render.JSON(w, r, response.OK())
	}
}
