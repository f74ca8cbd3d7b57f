package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceTier_DeliveryOffsets(t *testing.T) {
	pickup := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		offset     time.Duration
		multiplier decimal.Decimal
	}{
		{"Express 24h", 24 * time.Hour, decimal.NewFromInt(3)},
		{"Express 48h", 48 * time.Hour, decimal.NewFromInt(2)},
		{"Standard", 72 * time.Hour, decimal.NewFromInt(1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tier, err := order.ParseServiceTier(tc.name)
			require.NoError(t, err)

			assert.Equal(t, tc.offset, tier.DeliveryTime(pickup).Sub(pickup))
			assert.True(t, tc.multiplier.Equal(tier.PriceMultiplier()))
			assert.Equal(t, tc.name, tier.String())
		})
	}
}

func TestServiceTier_Parse(t *testing.T) {
	t.Run("should accept hyphenated names", func(t *testing.T) {
		tier, err := order.ParseServiceTier("Express-48h")

		require.NoError(t, err)
		assert.Equal(t, order.Express48h, tier)
	})

	t.Run("should reject unknown tiers", func(t *testing.T) {
		_, err := order.ParseServiceTier("Same day")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.Error(t, order.UnknownTier.Validate())
	})
}

func TestParsePickupTime(t *testing.T) {
	t.Run("should parse RFC 3339", func(t *testing.T) {
		pickup, err := order.ParsePickupTime("2024-01-01T05:30:00+05:30")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), pickup)
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		_, err := order.ParsePickupTime("next tuesday")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
