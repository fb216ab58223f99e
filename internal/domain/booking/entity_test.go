//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayops/internal/domain/booking"
	"stayops/internal/domain/promotion"
	"stayops/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validIdentity = booking.GuestIdentity{
	IdentityNumber: "3201234567890001",
	Nationality:    "ID",
	Phone:          "+628123456789",
}

type transitionCase struct {
	name   string
	status booking.Status
	act    func(*booking.Booking) error
	errIs  error
}

func runTransitions(t *testing.T, cases []transitionCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
				bb.Status = c.status
				bb.VerifiedPayment = true
			}).BuildDomain()

			err := c.act(b)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestBooking_StatusTransitions(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		runTransitions(t, []transitionCase{
			{name: "pending approves", status: booking.StatusPending, act: (*booking.Booking).Approve},
			{name: "confirmed cannot approve again", status: booking.StatusConfirmed, act: (*booking.Booking).Approve, errIs: booking.ErrInvalidTransition},
			{name: "completed cannot approve", status: booking.StatusCompleted, act: (*booking.Booking).Approve, errIs: booking.ErrInvalidTransition},
		})
	})

	t.Run("reject", func(t *testing.T) {
		runTransitions(t, []transitionCase{
			{name: "pending rejects", status: booking.StatusPending, act: (*booking.Booking).Reject},
			{name: "checked-in cannot reject", status: booking.StatusCheckedIn, act: (*booking.Booking).Reject, errIs: booking.ErrInvalidTransition},
		})
	})

	t.Run("cancel", func(t *testing.T) {
		runTransitions(t, []transitionCase{
			{name: "pending cancels", status: booking.StatusPending, act: (*booking.Booking).Cancel},
			{name: "confirmed cancels", status: booking.StatusConfirmed, act: (*booking.Booking).Cancel},
			{name: "checked-in cannot cancel", status: booking.StatusCheckedIn, act: (*booking.Booking).Cancel, errIs: booking.ErrInvalidTransition},
			{name: "cancelled is terminal", status: booking.StatusCancelled, act: (*booking.Booking).Cancel, errIs: booking.ErrInvalidTransition},
		})
	})

	t.Run("check-in", func(t *testing.T) {
		checkIn := func(b *booking.Booking) error { return b.CheckIn(validIdentity) }
		runTransitions(t, []transitionCase{
			{name: "confirmed checks in", status: booking.StatusConfirmed, act: checkIn},
			{name: "pending cannot check in", status: booking.StatusPending, act: checkIn, errIs: booking.ErrInvalidTransition},
			{name: "completed cannot check in", status: booking.StatusCompleted, act: checkIn, errIs: booking.ErrInvalidTransition},
		})
	})

	t.Run("check-out", func(t *testing.T) {
		checkOut := func(b *booking.Booking) error { return b.CheckOut(nil) }
		runTransitions(t, []transitionCase{
			{name: "checked-in checks out", status: booking.StatusCheckedIn, act: checkOut},
			{name: "confirmed cannot check out", status: booking.StatusConfirmed, act: checkOut, errIs: booking.ErrInvalidTransition},
		})
	})
}

func TestBooking_CheckIn(t *testing.T) {
	t.Run("requires verified payment", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusConfirmed
			bb.VerifiedPayment = false
		}).BuildDomain()

		err := b.CheckIn(validIdentity)
		require.ErrorIs(t, err, booking.ErrPaymentNotVerified)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("requires complete identity", func(t *testing.T) {
		cases := []struct {
			name     string
			identity booking.GuestIdentity
			errIs    error
		}{
			{"missing identity number", booking.GuestIdentity{Nationality: "ID", Phone: "+62812"}, booking.ErrMissingIdentityNumber},
			{"missing nationality", booking.GuestIdentity{IdentityNumber: "320", Phone: "+62812"}, booking.ErrMissingNationality},
			{"missing phone", booking.GuestIdentity{IdentityNumber: "320", Nationality: "ID"}, booking.ErrMissingPhone},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
					bb.Status = booking.StatusConfirmed
					bb.VerifiedPayment = true
				}).BuildDomain()

				require.ErrorIs(t, b.CheckIn(c.identity), c.errIs)
			})
		}
	})

	t.Run("records the captured identity", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusConfirmed
			bb.VerifiedPayment = true
		}).BuildDomain()

		checkIn, checkOut := b.CheckInDate(), b.CheckOutDate()

		require.NoError(t, b.CheckIn(validIdentity))
		require.NotNil(t, b.GuestIdentity())
		assert.Equal(t, validIdentity, *b.GuestIdentity())
		assert.Equal(t, booking.StatusCheckedIn, b.Status())
		assert.Equal(t, checkIn, b.CheckInDate())
		assert.Equal(t, checkOut, b.CheckOutDate())
	})
}

func TestBooking_CheckOut(t *testing.T) {
	t.Run("records damage note", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusCheckedIn
		}).BuildDomain()

		note := "broken lamp in the bedroom"
		require.NoError(t, b.CheckOut(&note))
		require.NotNil(t, b.DamageNote())
		assert.Equal(t, note, *b.DamageNote())
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("empty note is not recorded", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusCheckedIn
		}).BuildDomain()

		empty := ""
		require.NoError(t, b.CheckOut(&empty))
		assert.Nil(t, b.DamageNote())
	})
}

func TestBooking_Reschedule(t *testing.T) {
	newCheckIn := time.Date(2025, 4, 1, 14, 0, 0, 0, time.UTC)
	newCheckOut := newCheckIn.AddDate(0, 0, 3)

	t.Run("moves dates and recomputes nights", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusConfirmed
		}).BuildDomain()

		require.NoError(t, b.Reschedule(newCheckIn, newCheckOut, "OWNER-2025-0412"))
		assert.Equal(t, newCheckIn, b.CheckInDate())
		assert.Equal(t, newCheckOut, b.CheckOutDate())
		assert.Equal(t, 3, b.Nights())
	})

	t.Run("requires an authorization reference", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.ErrorIs(t, b.Reschedule(newCheckIn, newCheckOut, ""), booking.ErrMissingAuthRef)
	})

	t.Run("rejects inverted dates", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.ErrorIs(t, b.Reschedule(newCheckOut, newCheckIn, "OWNER-2025-0412"), booking.ErrInvalidDateRange)
	})

	t.Run("checked-in booking cannot move", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusCheckedIn
			bb.VerifiedPayment = true
		}).BuildDomain()

		require.ErrorIs(t, b.Reschedule(newCheckIn, newCheckOut, "OWNER-2025-0412"), booking.ErrInvalidTransition)
	})
}

func TestBooking_SetPaymentVerified(t *testing.T) {
	t.Run("flips the flag and stores the proof", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		proof := "TRX-88341"

		require.NoError(t, b.SetPaymentVerified(true, &proof))
		assert.True(t, b.VerifiedPayment())
		require.NotNil(t, b.PaymentProofRef())
		assert.Equal(t, proof, *b.PaymentProofRef())
	})

	t.Run("freezes once the booking closes", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled} {
			b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
				bb.Status = status
			}).BuildDomain()

			require.ErrorIs(t, b.SetPaymentVerified(true, nil), booking.ErrBookingClosed)
		}
	})
}

func TestBooking_ApplyPromotion(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newBooking := func() *booking.Booking {
		return builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.TotalPrice = 1_000_000
		}).BuildDomain()
	}
	promoFor := func(b *booking.Booking, mutate func(*builder.PromotionBuilder)) *promotion.Promotion {
		pb := builder.NewPromotionBuilder().With(func(p *builder.PromotionBuilder) {
			p.BusinessID = b.BusinessID()
		})
		if mutate != nil {
			pb.With(mutate)
		}
		return pb.BuildDomain()
	}

	t.Run("percentage discount reduces the total", func(t *testing.T) {
		b := newBooking()
		promo := promoFor(b, nil)

		discount, err := b.ApplyPromotion(promo, now)
		require.NoError(t, err)
		assert.Equal(t, "250000", discount.String())
		assert.Equal(t, "750000", b.TotalPrice().String())
		require.NotNil(t, b.AppliedPromotionID())
		assert.Equal(t, promo.ID(), *b.AppliedPromotionID())
	})

	t.Run("fixed discount clamps the total at zero", func(t *testing.T) {
		b := newBooking()
		promo := promoFor(b, func(p *builder.PromotionBuilder) {
			p.DiscountType = promotion.DiscountFixed
			p.Value = decimal.NewFromInt(5_000_000)
		})

		discount, err := b.ApplyPromotion(promo, now)
		require.NoError(t, err)
		assert.Equal(t, "5000000", discount.String())
		assert.True(t, b.TotalPrice().IsZero())
	})

	t.Run("second promotion is rejected", func(t *testing.T) {
		b := newBooking()
		first := promoFor(b, nil)
		second := promoFor(b, func(p *builder.PromotionBuilder) { p.Code = "WINTER10" })

		_, err := b.ApplyPromotion(first, now)
		require.NoError(t, err)

		_, err = b.ApplyPromotion(second, now)
		require.ErrorIs(t, err, booking.ErrPromotionAlreadyApplied)
		assert.Equal(t, "750000", b.TotalPrice().String())
	})

	t.Run("promotion of another business is rejected", func(t *testing.T) {
		b := newBooking()
		promo := builder.NewPromotionBuilder().BuildDomain()

		_, err := b.ApplyPromotion(promo, now)
		require.ErrorIs(t, err, booking.ErrPromotionWrongBusiness)
		assert.Nil(t, b.AppliedPromotionID())
	})

	t.Run("expired promotion is rejected", func(t *testing.T) {
		b := newBooking()
		validTo := now.AddDate(0, 0, -1)
		promo := promoFor(b, func(p *builder.PromotionBuilder) { p.ValidTo = &validTo })

		_, err := b.ApplyPromotion(promo, now)
		require.ErrorIs(t, err, promotion.ErrPromotionExpired)
	})

	t.Run("closed booking cannot take a promotion", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusCancelled
		}).BuildDomain()
		promo := promoFor(b, nil)

		_, err := b.ApplyPromotion(promo, now)
		require.ErrorIs(t, err, booking.ErrBookingClosed)
	})
}
