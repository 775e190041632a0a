package models

import (
	"errors"
	"time"
)

type EventStatus string

const (
	EventStatusOpen     EventStatus = "open"
	EventStatusClosed   EventStatus = "closed"
	EventStatusCanceled EventStatus = "canceled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusOpen, EventStatusClosed, EventStatusCanceled:
		return true
	}
	return false
}

// PriceTier is one quantity breakpoint of an event's price table. The unit
// price of the matched tier applies to the whole purchased quantity.
type PriceTier struct {
	MinQuantity  int   `json:"min_quantity"`
	PriceInCents int64 `json:"price_in_cents"`
}

type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Date            time.Time   `json:"date"`
	MaxParticipants int         `json:"max_participants"`
	PriceTiers      []PriceTier `json:"price_tiers"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

var (
	ErrNoPriceTiers      = errors.New("event has no price tiers")
	ErrTierOrder         = errors.New("price tiers must have strictly increasing min_quantity")
	ErrFirstTierNotOne   = errors.New("first price tier must start at quantity 1")
	ErrTierNegativePrice = errors.New("price tier amount must not be negative")
)

// ValidateTiers enforces the tier-table invariant: non-empty, first tier
// starts at quantity 1, strictly increasing min_quantity.
func ValidateTiers(tiers []PriceTier) error {
	if len(tiers) == 0 {
		return ErrNoPriceTiers
	}

	if tiers[0].MinQuantity != 1 {
		return ErrFirstTierNotOne
	}

	prev := 0
	for _, t := range tiers {
		if t.MinQuantity <= prev {
			return ErrTierOrder
		}
		if t.PriceInCents < 0 {
			return ErrTierNegativePrice
		}
		prev = t.MinQuantity
	}

	return nil
}
