package pricing

import (
	"errors"

	"eventCheckout/internal/models"
)

var (
	ErrNoTiers      = errors.New("price table is empty")
	ErrBelowMinimum = errors.New("quantity is below the first price tier")
)

// UnitPrice resolves the per-unit price for a quantity: the price of the last
// tier whose MinQuantity does not exceed it. Tiers must be sorted ascending
// by MinQuantity.
func UnitPrice(tiers []models.PriceTier, quantity int) (int64, error) {
	if len(tiers) == 0 {
		return 0, ErrNoTiers
	}

	if quantity < tiers[0].MinQuantity {
		return 0, ErrBelowMinimum
	}

	price := tiers[0].PriceInCents
	for _, t := range tiers[1:] {
		if t.MinQuantity > quantity {
			break
		}
		price = t.PriceInCents
	}

	return price, nil
}

// Total is the matched tier's unit price applied to the whole quantity.
// There is no proration across tiers.
func Total(tiers []models.PriceTier, quantity int) (int64, error) {
	unit, err := UnitPrice(tiers, quantity)
	if err != nil {
		return 0, err
	}

	return unit * int64(quantity), nil
}
