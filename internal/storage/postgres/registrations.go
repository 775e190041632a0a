package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"

	"github.com/lib/pq"
)

const registrationColumns = `id, event_id, checkout_id, user_id, created_by, attendee, status,
		created_at, updated_at`

func (s *Storage) CreateRegistration(ctx context.Context, reg *models.Registration) error {
	attendee, err := json.Marshal(reg.Attendee)
	if err != nil {
		return fmt.Errorf("marshal attendee: %w", err)
	}

	query := `
		INSERT INTO registrations (id, event_id, checkout_id, user_id, created_by, attendee, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = s.DB.ExecContext(ctx, query,
		reg.ID,
		reg.EventID,
		nullString(reg.CheckoutID),
		nullString(reg.UserID),
		reg.CreatedBy,
		attendee,
		reg.Status,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return storage.ErrAlreadyRegistered
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}

	return nil
}

func (s *Storage) GetRegistration(ctx context.Context, id string) (*models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`

	reg, err := scanRegistration(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return reg, nil
}

func (s *Storage) UpdateRegistrationAttendee(ctx context.Context, id string, attendee models.Attendee) error {
	raw, err := json.Marshal(attendee)
	if err != nil {
		return fmt.Errorf("marshal attendee: %w", err)
	}

	query := `UPDATE registrations SET attendee = $2, updated_at = now() WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query, id, raw)
	if err != nil {
		return fmt.Errorf("failed to update registration: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRegistrationNotFound
	}

	return nil
}

// ActivateRegistration confirms a registration. The whole check runs in one
// transaction: the parent checkout row is locked, must still be active, and
// the active-registration count must leave a free slot. Two concurrent
// activations therefore cannot both pass the availability check.
func (s *Storage) ActivateRegistration(ctx context.Context, id string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var checkoutID sql.NullString
	var status models.RegistrationStatus
	err = tx.QueryRowContext(ctx,
		`SELECT checkout_id, status FROM registrations WHERE id = $1 FOR UPDATE`, id).
		Scan(&checkoutID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrRegistrationNotFound
		}
		return fmt.Errorf("failed to lock registration: %w", err)
	}

	if status == models.RegistrationStatusOK {
		return nil
	}
	if status == models.RegistrationStatusInvalid {
		return storage.ErrCheckoutInactive
	}

	if checkoutID.Valid {
		var checkoutStatus models.CheckoutStatus
		var total int
		err = tx.QueryRowContext(ctx,
			`SELECT status, quantity + complimentary_slots FROM checkouts WHERE id = $1 FOR UPDATE`,
			checkoutID.String).
			Scan(&checkoutStatus, &total)
		if err != nil {
			return fmt.Errorf("failed to lock checkout: %w", err)
		}

		if checkoutStatus == models.CheckoutStatusDeleted || checkoutStatus == models.CheckoutStatusRefunded {
			return storage.ErrCheckoutInactive
		}

		var active int
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM registrations WHERE checkout_id = $1 AND status = $2`,
			checkoutID.String, models.RegistrationStatusOK).
			Scan(&active)
		if err != nil {
			return fmt.Errorf("failed to count active registrations: %w", err)
		}

		if total-active <= 0 {
			return storage.ErrNoAvailableSlots
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE registrations SET status = $2, updated_at = now() WHERE id = $1`,
		id, models.RegistrationStatusOK)
	if err != nil {
		return fmt.Errorf("failed to activate registration: %w", err)
	}

	return tx.Commit()
}

// CancelRegistration is the attendee's self-service withdrawal.
func (s *Storage) CancelRegistration(ctx context.Context, id string) error {
	query := `UPDATE registrations SET status = $2, updated_at = now() WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query, id, models.RegistrationStatusCancelled)
	if err != nil {
		return fmt.Errorf("failed to cancel registration: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRegistrationNotFound
	}

	return nil
}

// DeleteRegistration removes a registration document. Only the voucher
// flow's self-service deletion uses hard removal.
func (s *Storage) DeleteRegistration(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRegistrationNotFound
	}

	return nil
}

func (s *Storage) ListRegistrationsByCheckout(ctx context.Context, checkoutID string) ([]models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations
		WHERE checkout_id = $1 ORDER BY created_at ASC`

	return s.listRegistrations(ctx, query, checkoutID)
}

func (s *Storage) ListRegistrationsByEvent(ctx context.Context, eventID string) ([]models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations
		WHERE event_id = $1 ORDER BY created_at ASC`

	return s.listRegistrations(ctx, query, eventID)
}

// CountActiveRegistrations reports how many confirmed registrations an event
// has, for the availability summary.
func (s *Storage) CountActiveRegistrations(ctx context.Context, eventID string) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = $2`,
		eventID, models.RegistrationStatusOK).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	return count, nil
}

func (s *Storage) listRegistrations(ctx context.Context, query string, args ...any) ([]models.Registration, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		regs = append(regs, *reg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return regs, nil
}

func scanRegistration(row rowScanner) (*models.Registration, error) {
	var reg models.Registration
	var attendee []byte
	var checkoutID, userID sql.NullString

	err := row.Scan(
		&reg.ID,
		&reg.EventID,
		&checkoutID,
		&userID,
		&reg.CreatedBy,
		&attendee,
		&reg.Status,
		&reg.CreatedAt,
		&reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(attendee, &reg.Attendee); err != nil {
		return nil, fmt.Errorf("unmarshal attendee: %w", err)
	}

	reg.CheckoutID = checkoutID.String
	reg.UserID = userID.String

	return &reg, nil
}
