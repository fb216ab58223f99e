package settlement

import (
	"stayops/internal/domain/booking"
	"stayops/internal/domain/pricing"
)

// BookingFigure is the slice of a booking the ledger math needs.
type BookingFigure struct {
	TotalPrice pricing.Money
	Status     booking.Status
}

// Summary holds the aggregate financial figures the analytics views read.
type Summary struct {
	GTV                pricing.Money
	PlatformCommission pricing.Money
	NetOwnerRevenue    pricing.Money
}

// Summarize derives GTV, platform commission and net owner revenue.
// Cancelled bookings are excluded from GTV: a cancelled stay never
// transacted, so counting it would inflate the marketplace's volume.
func Summarize(bookings []BookingFigure, transactions []*Transaction) Summary {
	gtv := pricing.ZeroMoney()
	for _, b := range bookings {
		if b.Status == booking.StatusCancelled {
			continue
		}
		gtv = gtv.Add(b.TotalPrice)
	}

	commission := pricing.ZeroMoney()
	for _, tx := range transactions {
		if tx.Type() == TypeCommission {
			commission = commission.Add(tx.Amount())
		}
	}

	return Summary{
		GTV:                gtv,
		PlatformCommission: commission,
		NetOwnerRevenue:    gtv.Sub(commission),
	}
}
