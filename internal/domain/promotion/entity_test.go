//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/promotion"
	"stayops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromotion(t *testing.T) {
	businessID := uuid.New()

	t.Run("valid promotion starts active", func(t *testing.T) {
		p, err := promotion.NewPromotion(businessID, "WELCOME10", promotion.DiscountPercentage, decimal.NewFromInt(10), nil, nil)
		require.NoError(t, err)
		assert.True(t, p.Active())
		assert.True(t, p.BelongsTo(businessID))
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			code  string
			dtype promotion.DiscountType
			value int64
			errIs error
		}{
			{"empty code", "", promotion.DiscountFixed, 10, promotion.ErrEmptyCode},
			{"unknown discount type", "X", promotion.DiscountType("bogo"), 10, promotion.ErrInvalidDiscountType},
			{"negative value", "X", promotion.DiscountFixed, -10, promotion.ErrNegativeDiscount},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := promotion.NewPromotion(businessID, c.code, c.dtype, decimal.NewFromInt(c.value), nil, nil)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestPromotion_ValidateUsage(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*builder.PromotionBuilder)
		errIs  error
	}{
		{
			name:   "open-ended active promotion",
			mutate: func(b *builder.PromotionBuilder) {},
		},
		{
			name: "inside the validity window",
			mutate: func(b *builder.PromotionBuilder) {
				from := now.AddDate(0, 0, -1)
				to := now.AddDate(0, 0, 1)
				b.ValidFrom, b.ValidTo = &from, &to
			},
		},
		{
			name:   "deactivated",
			mutate: func(b *builder.PromotionBuilder) { b.Active = false },
			errIs:  promotion.ErrPromotionInactive,
		},
		{
			name: "not yet valid",
			mutate: func(b *builder.PromotionBuilder) {
				from := now.AddDate(0, 0, 1)
				b.ValidFrom = &from
			},
			errIs: promotion.ErrPromotionNotYetValid,
		},
		{
			name: "expired",
			mutate: func(b *builder.PromotionBuilder) {
				to := now.AddDate(0, 0, -1)
				b.ValidTo = &to
			},
			errIs: promotion.ErrPromotionExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := builder.NewPromotionBuilder().With(tt.mutate).BuildDomain()
			err := p.ValidateUsage(now)
			if tt.errIs == nil {
				require.NoError(t, err)
				assert.True(t, p.IsValidAt(now))
			} else {
				require.ErrorIs(t, err, tt.errIs)
				assert.False(t, p.IsValidAt(now))
			}
		})
	}
}

func TestPromotion_Discount(t *testing.T) {
	total := pricing.NewMoneyFromInt(1_000_000)

	t.Run("percentage", func(t *testing.T) {
		p := builder.NewPromotionBuilder().BuildDomain()
		assert.Equal(t, "250000", p.Discount(total).String())
	})

	t.Run("fixed", func(t *testing.T) {
		p := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
			b.DiscountType = promotion.DiscountFixed
			b.Value = decimal.NewFromInt(150_000)
		}).BuildDomain()
		assert.Equal(t, "150000", p.Discount(total).String())
	})
}
