package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	ID              string             `json:"id" validate:"required"`
	Title           string             `json:"title" validate:"required"`
	Date            time.Time          `json:"date" validate:"required"`
	MaxParticipants int                `json:"max_participants" validate:"required,gt=0"`
	PriceTiers      []models.PriceTier `json:"price_tiers" validate:"required"`
}

type EventResponse struct {
	response.Response
	EventID string `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, event *models.Event) error
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if err = models.ValidateTiers(req.PriceTiers); err != nil {
			log.Error("invalid price tiers", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		event := &models.Event{
			ID:              req.ID,
			Title:           req.Title,
			Date:            req.Date,
			MaxParticipants: req.MaxParticipants,
			PriceTiers:      req.PriceTiers,
			Status:          models.EventStatusOpen,
		}

		if err = creator.CreateEvent(r.Context(), event); err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))
			return
		}

		log.Info("event created", slog.String("event_id", event.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			EventID:  event.ID,
		})
	}
}
