package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTiers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		tiers   []PriceTier
		wantErr error
	}{
		{
			name: "valid single tier",
			tiers: []PriceTier{
				{MinQuantity: 1, PriceInCents: 50000},
			},
		},
		{
			name: "valid two tiers",
			tiers: []PriceTier{
				{MinQuantity: 1, PriceInCents: 50000},
				{MinQuantity: 4, PriceInCents: 40000},
			},
		},
		{
			name:    "empty table",
			tiers:   nil,
			wantErr: ErrNoPriceTiers,
		},
		{
			name: "first tier not one",
			tiers: []PriceTier{
				{MinQuantity: 2, PriceInCents: 50000},
			},
			wantErr: ErrFirstTierNotOne,
		},
		{
			name: "not strictly increasing",
			tiers: []PriceTier{
				{MinQuantity: 1, PriceInCents: 50000},
				{MinQuantity: 1, PriceInCents: 40000},
			},
			wantErr: ErrTierOrder,
		},
		{
			name: "decreasing breakpoint",
			tiers: []PriceTier{
				{MinQuantity: 1, PriceInCents: 50000},
				{MinQuantity: 5, PriceInCents: 40000},
				{MinQuantity: 3, PriceInCents: 30000},
			},
			wantErr: ErrTierOrder,
		},
		{
			name: "negative price",
			tiers: []PriceTier{
				{MinQuantity: 1, PriceInCents: -1},
			},
			wantErr: ErrTierNegativePrice,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateTiers(tc.tiers)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
