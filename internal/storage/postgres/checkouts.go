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

const checkoutColumns = `id, event_id, user_id, checkout_type, legal_entity, billing,
		quantity, complimentary_slots, amount_cents, voucher_code, payment, status,
		created_at, updated_at`

// UpsertCheckout writes a checkout under its deterministic composite id.
// Writing twice for the same (event, user) pair overwrites the pending
// document instead of duplicating it.
func (s *Storage) UpsertCheckout(ctx context.Context, c *models.Checkout) error {
	billing, payment, err := marshalCheckoutDocs(c)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO checkouts (id, event_id, user_id, checkout_type, legal_entity, billing,
			quantity, complimentary_slots, amount_cents, voucher_code, payment, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			checkout_type = EXCLUDED.checkout_type,
			legal_entity = EXCLUDED.legal_entity,
			billing = EXCLUDED.billing,
			quantity = EXCLUDED.quantity,
			complimentary_slots = EXCLUDED.complimentary_slots,
			amount_cents = EXCLUDED.amount_cents,
			voucher_code = EXCLUDED.voucher_code,
			payment = EXCLUDED.payment,
			status = EXCLUDED.status,
			updated_at = now()`

	_, err = s.DB.ExecContext(ctx, query,
		c.ID, c.EventID, c.UserID, c.Type, c.LegalEntity, billing,
		c.Quantity, c.ComplimentarySlots, c.AmountInCents,
		nullString(c.VoucherCode), payment, c.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert checkout: %w", err)
	}

	return nil
}

func (s *Storage) GetCheckout(ctx context.Context, id string) (*models.Checkout, error) {
	query := `SELECT ` + checkoutColumns + ` FROM checkouts WHERE id = $1`

	checkout, err := scanCheckout(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCheckoutNotFound
		}
		return nil, fmt.Errorf("failed to get checkout: %w", err)
	}

	return checkout, nil
}

// UpdateCheckout rewrites the buyer-editable fields of a checkout.
func (s *Storage) UpdateCheckout(ctx context.Context, c *models.Checkout) error {
	billing, payment, err := marshalCheckoutDocs(c)
	if err != nil {
		return err
	}

	query := `
		UPDATE checkouts
		SET legal_entity = $2, billing = $3, quantity = $4,
			complimentary_slots = $5, amount_cents = $6, payment = $7, updated_at = now()
		WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query,
		c.ID, c.LegalEntity, billing, c.Quantity,
		c.ComplimentarySlots, c.AmountInCents, payment,
	)
	if err != nil {
		return fmt.Errorf("failed to update checkout: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrCheckoutNotFound
	}

	return nil
}

// SetCheckoutStatus moves a checkout through the status machine and cascades
// the change to dependent registrations inside the same transaction:
// deleted invalidates them, refunded sends them back to pending, and
// reactivation (deleted -> pending) restores invalidated ones to pending.
func (s *Storage) SetCheckoutStatus(ctx context.Context, id string, to models.CheckoutStatus) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var from models.CheckoutStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM checkouts WHERE id = $1 FOR UPDATE`, id).Scan(&from)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrCheckoutNotFound
		}
		return fmt.Errorf("failed to lock checkout: %w", err)
	}

	if !models.CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, from, to)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE checkouts SET status = $2, updated_at = now() WHERE id = $1`, id, to)
	if err != nil {
		return fmt.Errorf("failed to update checkout status: %w", err)
	}

	if err = cascadeRegistrations(ctx, tx, id, from, to); err != nil {
		return err
	}

	return tx.Commit()
}

func cascadeRegistrations(ctx context.Context, tx *sql.Tx, checkoutID string, from, to models.CheckoutStatus) error {
	var query string
	var args []any

	switch {
	case to == models.CheckoutStatusDeleted:
		query = `UPDATE registrations SET status = $2, updated_at = now()
			WHERE checkout_id = $1 AND status <> $3`
		args = []any{checkoutID, models.RegistrationStatusInvalid, models.RegistrationStatusCancelled}

	case to == models.CheckoutStatusRefunded:
		query = `UPDATE registrations SET status = $2, updated_at = now()
			WHERE checkout_id = $1 AND status <> $3`
		args = []any{checkoutID, models.RegistrationStatusPending, models.RegistrationStatusCancelled}

	case from == models.CheckoutStatusDeleted && to == models.CheckoutStatusPending:
		query = `UPDATE registrations SET status = $2, updated_at = now()
			WHERE checkout_id = $1 AND status = $3`
		args = []any{checkoutID, models.RegistrationStatusPending, models.RegistrationStatusInvalid}

	default:
		return nil
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to cascade registrations: %w", err)
	}

	return nil
}

// AdvancePayment moves the nested commitment-payment status one step forward
// (admin "validate"); RetreatPayment moves it one step back ("invalidate").
func (s *Storage) AdvancePayment(ctx context.Context, id string) (*models.Payment, error) {
	return s.stepPayment(ctx, id, models.PaymentStatus.Advance)
}

func (s *Storage) RetreatPayment(ctx context.Context, id string) (*models.Payment, error) {
	return s.stepPayment(ctx, id, models.PaymentStatus.Retreat)
}

func (s *Storage) stepPayment(ctx context.Context, id string, step func(models.PaymentStatus) (models.PaymentStatus, error)) (*models.Payment, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	payment, err := lockPayment(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	next, err := step(payment.Status)
	if err != nil {
		return nil, err
	}
	payment.Status = next

	if err = writePayment(ctx, tx, id, payment); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return payment, nil
}

// SetAttachment records an uploaded file path on the payment document. The
// kind must match the current payment stage.
func (s *Storage) SetAttachment(ctx context.Context, id string, kind models.AttachmentKind, path string) (*models.Payment, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	payment, err := lockPayment(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if !models.AllowedAttachment(payment.Status, kind) {
		return nil, models.ErrAttachmentNotAllowed
	}

	setAttachmentPath(payment, kind, path)

	if err = writePayment(ctx, tx, id, payment); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return payment, nil
}

// RemoveAttachment clears an attachment path and returns the removed path so
// the caller can delete the blob.
func (s *Storage) RemoveAttachment(ctx context.Context, id string, kind models.AttachmentKind) (string, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	payment, err := lockPayment(ctx, tx, id)
	if err != nil {
		return "", err
	}

	removed := attachmentPath(payment, kind)
	setAttachmentPath(payment, kind, "")

	if err = writePayment(ctx, tx, id, payment); err != nil {
		return "", err
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	return removed, nil
}

func (s *Storage) ListCheckoutsByEvent(ctx context.Context, eventID string) ([]models.Checkout, error) {
	query := `SELECT ` + checkoutColumns + ` FROM checkouts WHERE event_id = $1 ORDER BY created_at ASC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkouts: %w", err)
	}
	defer rows.Close()

	var checkouts []models.Checkout
	for rows.Next() {
		checkout, err := scanCheckout(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkout: %w", err)
		}
		checkouts = append(checkouts, *checkout)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checkouts: %w", err)
	}

	return checkouts, nil
}

func lockPayment(ctx context.Context, tx *sql.Tx, id string) (*models.Payment, error) {
	var raw []byte
	err := tx.QueryRowContext(ctx, `SELECT payment FROM checkouts WHERE id = $1 FOR UPDATE`, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCheckoutNotFound
		}
		return nil, fmt.Errorf("failed to lock checkout payment: %w", err)
	}

	if len(raw) == 0 {
		return nil, storage.ErrNoPayment
	}

	var payment models.Payment
	if err = json.Unmarshal(raw, &payment); err != nil {
		return nil, fmt.Errorf("unmarshal payment: %w", err)
	}

	return &payment, nil
}

func writePayment(ctx context.Context, tx *sql.Tx, id string, payment *models.Payment) error {
	raw, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("marshal payment: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE checkouts SET payment = $2, updated_at = now() WHERE id = $1`, id, raw)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	return nil
}

func attachmentPath(p *models.Payment, kind models.AttachmentKind) string {
	switch kind {
	case models.AttachmentCommitment:
		return p.CommitmentReceipt
	case models.AttachmentReceipt:
		return p.PaymentReceipt
	case models.AttachmentInvoice:
		return p.Invoice
	}
	return ""
}

func setAttachmentPath(p *models.Payment, kind models.AttachmentKind, path string) {
	switch kind {
	case models.AttachmentCommitment:
		p.CommitmentReceipt = path
	case models.AttachmentReceipt:
		p.PaymentReceipt = path
	case models.AttachmentInvoice:
		p.Invoice = path
	}
}

func marshalCheckoutDocs(c *models.Checkout) (billing []byte, payment any, err error) {
	billing, err = json.Marshal(c.Billing)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal billing details: %w", err)
	}

	if c.Payment == nil {
		return billing, nil, nil
	}

	raw, err := json.Marshal(c.Payment)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal payment: %w", err)
	}

	return billing, raw, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanCheckout(row rowScanner) (*models.Checkout, error) {
	var c models.Checkout
	var billing []byte
	var payment []byte
	var voucher sql.NullString

	err := row.Scan(
		&c.ID,
		&c.EventID,
		&c.UserID,
		&c.Type,
		&c.LegalEntity,
		&billing,
		&c.Quantity,
		&c.ComplimentarySlots,
		&c.AmountInCents,
		&voucher,
		&payment,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(billing, &c.Billing); err != nil {
		return nil, fmt.Errorf("unmarshal billing details: %w", err)
	}

	if len(payment) > 0 {
		c.Payment = &models.Payment{}
		if err = json.Unmarshal(payment, c.Payment); err != nil {
			return nil, fmt.Errorf("unmarshal payment: %w", err)
		}
	}

	c.VoucherCode = voucher.String

	return &c, nil
}
