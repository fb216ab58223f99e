//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(amount int64) pricing.Money {
	return pricing.NewMoneyFromInt(amount)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  error
	}{
		{
			name:     "two full days",
			checkIn:  time.Date(2024, 12, 24, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 12, 26, 14, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2024, 12, 24, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 12, 26, 20, 0, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "same-day stay counts one night",
			checkIn:  time.Date(2024, 12, 24, 10, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "check-out equal to check-in",
			checkIn:  time.Date(2024, 12, 24, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 12, 24, 14, 0, 0, 0, time.UTC),
			wantErr:  pricing.ErrInvalidDateRange,
		},
		{
			name:     "check-out before check-in",
			checkIn:  time.Date(2024, 12, 26, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 12, 24, 14, 0, 0, 0, time.UTC),
			wantErr:  pricing.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Nights(tt.checkIn, tt.checkOut)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_Quote(t *testing.T) {
	calc := pricing.NewCalculator(money(25_000))
	checkIn := time.Date(2024, 12, 28, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	t.Run("base price times nights plus default fee", func(t *testing.T) {
		quote, err := calc.Quote(money(500_000), checkIn, checkOut, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, 3, quote.Nights)
		assert.True(t, quote.RoomTotal.Equal(money(1_500_000)))
		assert.True(t, quote.ServiceFee.Equal(money(25_000)))
		assert.True(t, quote.GrandTotal.Equal(money(1_525_000)))
	})

	t.Run("percentage weekend markup on premium unit", func(t *testing.T) {
		rule := builder.NewRuleBuilder().BuildDomain()
		quote, err := calc.Quote(money(1_500_000), checkIn, checkOut, []*pricing.Rule{rule}, nil)
		require.NoError(t, err)

		// 4,500,000 room total, +15% markup, +25,000 default fee
		assert.True(t, quote.RoomTotal.Equal(money(4_500_000)))
		assert.True(t, quote.GrandTotal.Equal(money(5_200_000)))
	})

	t.Run("rules apply additively against the room total", func(t *testing.T) {
		markup := builder.NewRuleBuilder().BuildDomain()
		discount := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
			b.AdjustmentType = pricing.AdjustmentFixed
			b.Value = decimal.NewFromInt(-100_000)
		}).BuildDomain()

		quote, err := calc.Quote(money(1_000_000), checkIn, checkOut, []*pricing.Rule{markup, discount}, nil)
		require.NoError(t, err)

		// 3,000,000 + 15% of 3,000,000 - 100,000 + 25,000
		assert.True(t, quote.GrandTotal.Equal(money(3_375_000)))
	})

	t.Run("inactive rule does not apply", func(t *testing.T) {
		rule := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
			b.Active = false
		}).BuildDomain()

		quote, err := calc.Quote(money(500_000), checkIn, checkOut, []*pricing.Rule{rule}, nil)
		require.NoError(t, err)
		assert.True(t, quote.GrandTotal.Equal(money(1_525_000)))
	})

	t.Run("rule outside its validity window does not apply", func(t *testing.T) {
		from := checkIn.AddDate(0, 1, 0)
		rule := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
			b.ValidFrom = &from
		}).BuildDomain()

		quote, err := calc.Quote(money(500_000), checkIn, checkOut, []*pricing.Rule{rule}, nil)
		require.NoError(t, err)
		assert.True(t, quote.GrandTotal.Equal(money(1_525_000)))
	})

	t.Run("business service fee overrides the default", func(t *testing.T) {
		fee := money(50_000)
		quote, err := calc.Quote(money(500_000), checkIn, checkOut, nil, &fee)
		require.NoError(t, err)

		assert.True(t, quote.ServiceFee.Equal(money(50_000)))
		assert.True(t, quote.GrandTotal.Equal(money(1_550_000)))
	})

	t.Run("grand total floors at zero", func(t *testing.T) {
		discount := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
			b.AdjustmentType = pricing.AdjustmentFixed
			b.Value = decimal.NewFromInt(-10_000_000)
		}).BuildDomain()

		quote, err := calc.Quote(money(500_000), checkIn, checkOut, []*pricing.Rule{discount}, nil)
		require.NoError(t, err)
		assert.True(t, quote.GrandTotal.IsZero())
	})

	t.Run("identical inputs produce identical quotes", func(t *testing.T) {
		rule := builder.NewRuleBuilder().BuildDomain()
		first, err := calc.Quote(money(750_000), checkIn, checkOut, []*pricing.Rule{rule}, nil)
		require.NoError(t, err)
		second, err := calc.Quote(money(750_000), checkIn, checkOut, []*pricing.Rule{rule}, nil)
		require.NoError(t, err)

		assert.Equal(t, first.Nights, second.Nights)
		assert.True(t, first.GrandTotal.Equal(second.GrandTotal))
	})

	t.Run("invalid date range", func(t *testing.T) {
		_, err := calc.Quote(money(500_000), checkOut, checkIn, nil, nil)
		require.ErrorIs(t, err, pricing.ErrInvalidDateRange)
	})
}
