package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventCheckout/internal/lib/docid"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

func (s *Storage) CreateVoucher(ctx context.Context, v *models.Voucher) error {
	query := `
		INSERT INTO vouchers (code, checkout_id, event_id, active)
		VALUES ($1, $2, $3, $4)`

	_, err := s.DB.ExecContext(ctx, query, v.Code, v.CheckoutID, v.EventID, v.Active)
	if err != nil {
		return fmt.Errorf("failed to create voucher: %w", err)
	}

	return nil
}

func (s *Storage) GetVoucher(ctx context.Context, code string) (*models.Voucher, error) {
	query := `
		SELECT code, checkout_id, event_id, active, created_at, updated_at
		FROM vouchers
		WHERE code = $1`

	var v models.Voucher
	err := s.DB.QueryRowContext(ctx, query, code).Scan(
		&v.Code,
		&v.CheckoutID,
		&v.EventID,
		&v.Active,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("failed to get voucher: %w", err)
	}

	return &v, nil
}

// SetVoucherActive flips the redemption gate. Deactivation blocks further
// redemption but leaves already-created registrations alone.
func (s *Storage) SetVoucherActive(ctx context.Context, code string, active bool) error {
	query := `UPDATE vouchers SET active = $2, updated_at = now() WHERE code = $1`

	res, err := s.DB.ExecContext(ctx, query, code, active)
	if err != nil {
		return fmt.Errorf("failed to update voucher: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrVoucherNotFound
	}

	return nil
}

// RedeemVoucher validates the code inside a transaction and creates the
// attendee's registration against the voucher's issuing checkout, without a
// new checkout document.
func (s *Storage) RedeemVoucher(ctx context.Context, code string, reg *models.Registration) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var checkoutID, eventID string
	var active bool
	err = tx.QueryRowContext(ctx,
		`SELECT checkout_id, event_id, active FROM vouchers WHERE code = $1 FOR UPDATE`, code).
		Scan(&checkoutID, &eventID, &active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrVoucherNotFound
		}
		return fmt.Errorf("failed to lock voucher: %w", err)
	}

	if !active {
		return storage.ErrVoucherInactive
	}

	reg.EventID = eventID
	reg.CheckoutID = checkoutID
	reg.ID = docid.Compose(eventID, reg.UserID)

	attendee, err := json.Marshal(reg.Attendee)
	if err != nil {
		return fmt.Errorf("marshal attendee: %w", err)
	}

	query := `
		INSERT INTO registrations (id, event_id, checkout_id, user_id, created_by, attendee, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = tx.ExecContext(ctx, query,
		reg.ID,
		reg.EventID,
		reg.CheckoutID,
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

	return tx.Commit()
}
