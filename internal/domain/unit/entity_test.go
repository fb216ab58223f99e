//go:build unit

package unit_test

import (
	"testing"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/unit"
	"stayops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnit(t *testing.T) {
	businessID := uuid.New()

	t.Run("new unit is ready and listed", func(t *testing.T) {
		u, err := unit.NewUnit(businessID, "Garden Suite", pricing.NewMoneyFromInt(350_000), 2, []string{"wifi"})
		require.NoError(t, err)

		assert.Equal(t, unit.StatusReady, u.Status())
		assert.True(t, u.Available())
		assert.True(t, u.IsBookable())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			unitName string
			price    int64
			capacity int
			errIs    error
		}{
			{"empty name", "", 350_000, 2, unit.ErrEmptyName},
			{"zero capacity", "Garden Suite", 350_000, 0, unit.ErrInvalidCapacity},
			{"negative price", "Garden Suite", -1, 2, unit.ErrNegativePrice},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				price := pricing.NewMoney(decimal.NewFromInt(c.price))
				_, err := unit.NewUnit(businessID, c.unitName, price, c.capacity, nil)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestUnit_SetStatus(t *testing.T) {
	t.Run("blocked forces the unit off listing", func(t *testing.T) {
		u := builder.NewUnitBuilder().BuildDomain()
		require.True(t, u.Available())

		require.NoError(t, u.SetStatus(unit.StatusBlocked))
		assert.False(t, u.Available())
		assert.False(t, u.IsBookable())
	})

	t.Run("maintenance forces the unit off listing", func(t *testing.T) {
		u := builder.NewUnitBuilder().BuildDomain()
		require.NoError(t, u.SetStatus(unit.StatusMaintenance))
		assert.False(t, u.Available())
	})

	t.Run("cleaning keeps the listing flag", func(t *testing.T) {
		u := builder.NewUnitBuilder().BuildDomain()
		require.NoError(t, u.SetStatus(unit.StatusCleaning))
		assert.True(t, u.Available())
	})

	t.Run("invalid status", func(t *testing.T) {
		u := builder.NewUnitBuilder().BuildDomain()
		require.ErrorIs(t, u.SetStatus(unit.Status("demolished")), unit.ErrInvalidStatus)
	})
}

func TestUnit_SetAvailable(t *testing.T) {
	t.Run("blocked unit cannot be listed", func(t *testing.T) {
		u := builder.NewUnitBuilder().With(func(b *builder.UnitBuilder) {
			b.Status = unit.StatusBlocked
			b.Available = false
		}).BuildDomain()

		require.ErrorIs(t, u.SetAvailable(true), unit.ErrUnitNotBookable)
	})

	t.Run("ready unit toggles freely", func(t *testing.T) {
		u := builder.NewUnitBuilder().BuildDomain()
		require.NoError(t, u.SetAvailable(false))
		assert.False(t, u.IsBookable())
		require.NoError(t, u.SetAvailable(true))
		assert.True(t, u.IsBookable())
	})
}

func TestUnit_MarkDirtyAfterCheckout(t *testing.T) {
	u := builder.NewUnitBuilder().BuildDomain()
	u.MarkDirtyAfterCheckout()

	assert.Equal(t, unit.StatusDirty, u.Status())
	assert.False(t, u.Available())
	assert.False(t, u.IsBookable())
}
