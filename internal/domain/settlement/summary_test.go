//go:build unit

package settlement_test

import (
	"testing"
	"time"

	"stayops/internal/domain/booking"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/settlement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func figure(amount int64, status booking.Status) settlement.BookingFigure {
	return settlement.BookingFigure{
		TotalPrice: pricing.NewMoneyFromInt(amount),
		Status:     status,
	}
}

func commission(t *testing.T, total int64, rate int64) *settlement.Transaction {
	t.Helper()
	tx, err := settlement.NewCommission(
		uuid.New(), uuid.New(),
		pricing.NewMoneyFromInt(total),
		decimal.NewFromInt(rate),
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return tx
}

func TestNewCommission(t *testing.T) {
	t.Run("takes rate percent of the booking total", func(t *testing.T) {
		tx := commission(t, 2_000_000, 15)

		assert.Equal(t, settlement.TypeCommission, tx.Type())
		assert.Equal(t, "300000", tx.Amount().String())
		assert.Equal(t, settlement.TxStatusCompleted, tx.Status())
	})

	t.Run("rejects a negative rate", func(t *testing.T) {
		_, err := settlement.NewCommission(
			uuid.New(), uuid.New(),
			pricing.NewMoneyFromInt(1_000_000),
			decimal.NewFromInt(-5),
			time.Now(),
		)
		require.Error(t, err)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("empty inputs yield a zero summary", func(t *testing.T) {
		summary := settlement.Summarize(nil, nil)
		assert.True(t, summary.GTV.IsZero())
		assert.True(t, summary.PlatformCommission.IsZero())
		assert.True(t, summary.NetOwnerRevenue.IsZero())
	})

	t.Run("cancelled bookings are excluded from GTV", func(t *testing.T) {
		figures := []settlement.BookingFigure{
			figure(1_000_000, booking.StatusCompleted),
			figure(2_000_000, booking.StatusConfirmed),
			figure(9_000_000, booking.StatusCancelled),
		}

		summary := settlement.Summarize(figures, nil)
		assert.Equal(t, "3000000", summary.GTV.Amount().String())
	})

	t.Run("net revenue is GTV minus commission", func(t *testing.T) {
		figures := []settlement.BookingFigure{
			figure(2_000_000, booking.StatusCompleted),
		}
		transactions := []*settlement.Transaction{
			commission(t, 2_000_000, 15),
		}

		summary := settlement.Summarize(figures, transactions)
		assert.Equal(t, "2000000", summary.GTV.Amount().String())
		assert.Equal(t, "300000", summary.PlatformCommission.Amount().String())
		assert.Equal(t, "1700000", summary.NetOwnerRevenue.Amount().String())
	})
}
