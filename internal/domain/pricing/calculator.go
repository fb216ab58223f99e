package pricing

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// Quote is the priced breakdown of a prospective stay.
type Quote struct {
	Nights     int
	RoomTotal  Money
	ServiceFee Money
	GrandTotal Money
}

// Nights counts billable nights between two instants: the day difference
// rounded up, never less than one.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidDateRange
	}
	days := checkOut.Sub(checkIn).Hours() / 24
	nights := int(math.Ceil(days))
	if nights < 1 {
		nights = 1
	}
	return nights, nil
}

// Calculator prices stays. It is pure: identical inputs always produce an
// identical Quote.
type Calculator struct {
	defaultServiceFee Money
}

func NewCalculator(defaultServiceFee Money) *Calculator {
	return &Calculator{defaultServiceFee: defaultServiceFee}
}

// Quote computes the payable amount for a stay in a unit with the given
// base nightly price. Every active rule covering the check-in date
// contributes additively against the room total. The service fee falls back
// to the platform default when the business has none. The grand total is
// floored at zero.
func (c *Calculator) Quote(basePrice Money, checkIn, checkOut time.Time, rules []*Rule, serviceFee *Money) (Quote, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return Quote{}, err
	}

	roomTotal := basePrice.MulInt(int64(nights))

	adjusted := roomTotal
	for _, rule := range rules {
		if !rule.AppliesAt(checkIn) {
			continue
		}
		adjusted = adjusted.Add(rule.AdjustmentFor(roomTotal))
	}

	fee := c.defaultServiceFee
	if serviceFee != nil {
		fee = *serviceFee
	}

	return Quote{
		Nights:     nights,
		RoomTotal:  roomTotal,
		ServiceFee: fee,
		GrandTotal: adjusted.Add(fee).FloorZero(),
	}, nil
}

func (c *Calculator) DefaultServiceFee() Money {
	return c.defaultServiceFee
}
