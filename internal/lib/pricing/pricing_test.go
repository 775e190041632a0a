package pricing

import (
	"testing"

	"eventCheckout/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotal(t *testing.T) {
	t.Parallel()

	tiers := []models.PriceTier{
		{MinQuantity: 1, PriceInCents: 50000},
		{MinQuantity: 4, PriceInCents: 40000},
	}

	testCases := []struct {
		name     string
		tiers    []models.PriceTier
		quantity int
		want     int64
		wantErr  error
	}{
		{
			name:     "below second breakpoint uses first tier",
			tiers:    tiers,
			quantity: 3,
			want:     150000,
		},
		{
			name:     "at breakpoint uses second tier",
			tiers:    tiers,
			quantity: 4,
			want:     160000,
		},
		{
			name:     "above breakpoint uses second tier",
			tiers:    tiers,
			quantity: 5,
			want:     200000,
		},
		{
			name:     "single unit",
			tiers:    tiers,
			quantity: 1,
			want:     50000,
		},
		{
			name: "three tiers pick the middle",
			tiers: []models.PriceTier{
				{MinQuantity: 1, PriceInCents: 100},
				{MinQuantity: 5, PriceInCents: 90},
				{MinQuantity: 10, PriceInCents: 80},
			},
			quantity: 7,
			want:     630,
		},
		{
			name:     "empty tier table is a configuration error",
			tiers:    nil,
			quantity: 2,
			wantErr:  ErrNoTiers,
		},
		{
			name: "quantity below first tier is rejected",
			tiers: []models.PriceTier{
				{MinQuantity: 2, PriceInCents: 100},
			},
			quantity: 1,
			wantErr:  ErrBelowMinimum,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Total(tc.tiers, tc.quantity)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnitPrice(t *testing.T) {
	t.Parallel()

	tiers := []models.PriceTier{
		{MinQuantity: 1, PriceInCents: 50000},
		{MinQuantity: 4, PriceInCents: 40000},
	}

	unit, err := UnitPrice(tiers, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(40000), unit)

	unit, err = UnitPrice(tiers, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), unit)
}
