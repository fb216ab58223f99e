//go:build unit || e2e

package builder

import (
	"time"

	dombooking "stayops/internal/domain/booking"
	"stayops/internal/domain/pricing"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	UnitID          uuid.UUID
	GuestID         *uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Nights          int
	TotalPrice      int64
	Status          dombooking.Status
	VerifiedPayment bool
	PromotionID     *uuid.UUID
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	guestID := uuid.New()
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		UnitID:     uuid.New(),
		GuestID:    &guestID,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 2),
		Nights:     2,
		TotalPrice: 1_000_000,
		Status:     dombooking.StatusPending,
		CreatedAt:  checkIn.AddDate(0, 0, -7),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.BusinessID, b.UnitID,
		b.GuestID,
		b.CheckIn, b.CheckOut,
		b.Nights,
		pricing.NewMoneyFromInt(b.TotalPrice),
		b.Status,
		b.VerifiedPayment,
		nil,
		b.PromotionID,
		nil,
		nil,
		b.CreatedAt, b.CreatedAt,
	)
}
