package booking

import (
	"errors"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/unit"
	"stayops/internal/pkg/clock"

	"github.com/google/uuid"
	"time"
)

var (
	ErrUnitNotBookable = errors.New("unit is not available for booking")
	ErrNegativePrice   = errors.New("price override cannot be negative")
)

// Factory creates bookings with their price already computed. It owns the
// creation-time rules: unit availability, date validation, walk-in
// semantics and the optional manual price override.
type Factory struct {
	clock      clock.Clock
	calculator *pricing.Calculator
}

func NewFactory(clk clock.Clock, calculator *pricing.Calculator) *Factory {
	return &Factory{clock: clk, calculator: calculator}
}

type CreateSpec struct {
	Unit          *unit.Unit
	GuestID       *uuid.UUID // nil creates a walk-in
	CheckIn       time.Time
	CheckOut      time.Time
	Rules         []*pricing.Rule
	ServiceFee    *pricing.Money
	PriceOverride *pricing.Money
}

// Create builds a new booking. Guest self-service bookings enter pending;
// walk-ins are desk-settled and enter confirmed with payment verified,
// whatever the input payment fields said.
func (f *Factory) Create(spec CreateSpec) (*Booking, error) {
	if !spec.Unit.IsBookable() {
		return nil, ErrUnitNotBookable
	}

	quote, err := f.calculator.Quote(spec.Unit.BasePrice(), spec.CheckIn, spec.CheckOut, spec.Rules, spec.ServiceFee)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	total := quote.GrandTotal
	if spec.PriceOverride != nil {
		if spec.PriceOverride.IsNegative() {
			return nil, ErrNegativePrice
		}
		total = *spec.PriceOverride
	}

	b := &Booking{
		id:         uuid.New(),
		businessID: spec.Unit.BusinessID(),
		unitID:     spec.Unit.ID(),
		guestID:    spec.GuestID,
		checkIn:    spec.CheckIn,
		checkOut:   spec.CheckOut,
		nights:     quote.Nights,
		totalPrice: total,
		status:     StatusPending,
		createdAt:  f.clock.Now(),
	}

	if b.IsWalkIn() {
		b.status = StatusConfirmed
		b.verifiedPayment = true
	}

	return b, nil
}
