//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayops/internal/domain/booking"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/unit"
	"stayops/internal/pkg/clock"
	"stayops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory() *booking.Factory {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	return booking.NewFactory(clk, pricing.NewCalculator(pricing.NewMoneyFromInt(25_000)))
}

func baseSpec(u *unit.Unit) booking.CreateSpec {
	guestID := uuid.New()
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	return booking.CreateSpec{
		Unit:     u,
		GuestID:  &guestID,
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 2),
	}
}

func TestFactory_Create(t *testing.T) {
	factory := newFactory()

	t.Run("guest booking enters pending with payment outstanding", func(t *testing.T) {
		u := builder.NewUnitBuilder().BuildDomain()
		spec := baseSpec(u)

		b, err := factory.Create(spec)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.False(t, b.VerifiedPayment())
		assert.False(t, b.IsWalkIn())
		assert.Equal(t, u.BusinessID(), b.BusinessID())
		assert.Equal(t, 2, b.Nights())
		// 2 nights at 500,000 plus the default service fee
		assert.Equal(t, "1025000", b.TotalPrice().String())
	})

	t.Run("walk-in enters confirmed with payment verified", func(t *testing.T) {
		u := builder.NewUnitBuilder().BuildDomain()
		spec := baseSpec(u)
		spec.GuestID = nil

		b, err := factory.Create(spec)
		require.NoError(t, err)

		assert.True(t, b.IsWalkIn())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.VerifiedPayment())
	})

	t.Run("price override replaces the computed total", func(t *testing.T) {
		u := builder.NewUnitBuilder().BuildDomain()
		spec := baseSpec(u)
		override := pricing.NewMoneyFromInt(800_000)
		spec.PriceOverride = &override

		b, err := factory.Create(spec)
		require.NoError(t, err)
		assert.Equal(t, "800000", b.TotalPrice().String())
	})

	t.Run("negative price override is rejected", func(t *testing.T) {
		u := builder.NewUnitBuilder().BuildDomain()
		spec := baseSpec(u)
		override := pricing.ZeroMoney().Sub(pricing.NewMoneyFromInt(1))
		spec.PriceOverride = &override

		_, err := factory.Create(spec)
		require.ErrorIs(t, err, booking.ErrNegativePrice)
	})

	t.Run("unlisted unit is not bookable", func(t *testing.T) {
		u := builder.NewUnitBuilder().With(func(ub *builder.UnitBuilder) {
			ub.Available = false
		}).BuildDomain()

		_, err := factory.Create(baseSpec(u))
		require.ErrorIs(t, err, booking.ErrUnitNotBookable)
	})

	t.Run("invalid date range", func(t *testing.T) {
		u := builder.NewUnitBuilder().BuildDomain()
		spec := baseSpec(u)
		spec.CheckOut = spec.CheckIn

		_, err := factory.Create(spec)
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})
}
