package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

func (s *Storage) CreateEvent(ctx context.Context, event *models.Event) error {
	tiers, err := json.Marshal(event.PriceTiers)
	if err != nil {
		return fmt.Errorf("marshal price tiers: %w", err)
	}

	query := `
		INSERT INTO events (id, title, date, max_participants, price_tiers, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = s.DB.ExecContext(ctx, query,
		event.ID,
		event.Title,
		event.Date,
		event.MaxParticipants,
		tiers,
		event.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (s *Storage) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	query := `
		SELECT id, title, date, max_participants, price_tiers, status, created_at, updated_at
		FROM events
		WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) ListEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, title, date, max_participants, price_tiers, status, created_at, updated_at
		FROM events
		ORDER BY date ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) SetEventStatus(ctx context.Context, id string, status models.EventStatus) error {
	query := `
		UPDATE events
		SET status = $2, updated_at = now()
		WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var event models.Event
	var tiers []byte

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Date,
		&event.MaxParticipants,
		&tiers,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(tiers, &event.PriceTiers); err != nil {
		return nil, fmt.Errorf("unmarshal price tiers: %w", err)
	}

	return &event, nil
}
