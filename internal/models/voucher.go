package models

import "time"

// Voucher is a redeemable code issued by a checkout. Redemption creates a
// registration against the issuing checkout without a new purchase.
type Voucher struct {
	Code       string    `json:"code"`
	CheckoutID string    `json:"checkout_id"`
	EventID    string    `json:"event_id"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
