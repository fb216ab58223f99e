package booking

import (
	"errors"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/promotion"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition       = errors.New("invalid transition for current booking status")
	ErrInvalidDateRange        = errors.New("check-out must be after check-in")
	ErrPaymentNotVerified      = errors.New("payment must be verified before check-in")
	ErrBookingClosed           = errors.New("booking is in a terminal status")
	ErrPromotionWrongBusiness  = errors.New("promotion belongs to a different business")
	ErrPromotionAlreadyApplied = errors.New("a promotion was already applied to this booking")
)

// Booking is the central mutable entity of the marketplace. It is never
// hard-deleted; cancellation is a terminal status, not a removal.
type Booking struct {
	id                 uuid.UUID
	businessID         uuid.UUID
	unitID             uuid.UUID
	guestID            *uuid.UUID // nil for walk-ins
	checkIn            time.Time
	checkOut           time.Time
	nights             int
	totalPrice         pricing.Money
	status             Status
	verifiedPayment    bool
	paymentProofRef    *string
	appliedPromotionID *uuid.UUID
	guestIdentity      *GuestIdentity
	damageNote         *string
	createdAt          time.Time
	updatedAt          time.Time
}

func ReconstructBooking(
	id, businessID, unitID uuid.UUID,
	guestID *uuid.UUID,
	checkIn, checkOut time.Time,
	nights int,
	totalPrice pricing.Money,
	status Status,
	verifiedPayment bool,
	paymentProofRef *string,
	appliedPromotionID *uuid.UUID,
	guestIdentity *GuestIdentity,
	damageNote *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		businessID:         businessID,
		unitID:             unitID,
		guestID:            guestID,
		checkIn:            checkIn,
		checkOut:           checkOut,
		nights:             nights,
		totalPrice:         totalPrice,
		status:             status,
		verifiedPayment:    verifiedPayment,
		paymentProofRef:    paymentProofRef,
		appliedPromotionID: appliedPromotionID,
		guestIdentity:      guestIdentity,
		damageNote:         damageNote,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Approve moves a pending booking to confirmed. Payment may still be
// outstanding at this point; verification is tracked separately.
func (b *Booking) Approve() error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	return nil
}

// Reject cancels a pending booking.
func (b *Booking) Reject() error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	return nil
}

// Cancel is reachable from pending or confirmed only.
func (b *Booking) Cancel() error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	return nil
}

// CheckIn performs the digital check-in: identity capture is mandatory and
// the payment must have been verified before the guest gets room access.
func (b *Booking) CheckIn(identity GuestIdentity) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if err := identity.Validate(); err != nil {
		return err
	}
	if !b.verifiedPayment {
		return ErrPaymentNotVerified
	}
	b.guestIdentity = &identity
	b.status = StatusCheckedIn
	return nil
}

// CheckOut closes the stay. The caller must also push the booked unit into
// its cleaning cycle; the two updates belong to one transaction.
func (b *Booking) CheckOut(damageNote *string) error {
	if b.status != StatusCheckedIn {
		return ErrInvalidTransition
	}
	if damageNote != nil && *damageNote != "" {
		b.damageNote = damageNote
	}
	b.status = StatusCompleted
	return nil
}

// Reschedule moves the stay dates in place. Only pending and confirmed
// bookings may move; the authorization reference is advisory audit text and
// is recorded by the caller, not verified.
func (b *Booking) Reschedule(newCheckIn, newCheckOut time.Time, authRef string) error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if authRef == "" {
		return ErrMissingAuthRef
	}
	nights, err := pricing.Nights(newCheckIn, newCheckOut)
	if err != nil {
		return ErrInvalidDateRange
	}
	b.checkIn = newCheckIn
	b.checkOut = newCheckOut
	b.nights = nights
	return nil
}

// SetPaymentVerified flips the orthogonal payment flag. It drives no status
// transition but gates check-in, and freezes once the booking closes.
func (b *Booking) SetPaymentVerified(verified bool, proofRef *string) error {
	if b.status == StatusCompleted || b.status == StatusCancelled {
		return ErrBookingClosed
	}
	b.verifiedPayment = verified
	if proofRef != nil {
		b.paymentProofRef = proofRef
	}
	return nil
}

// ApplyPromotion discounts the booking total with an explicit one-shot
// promotion. Scope and validity are enforced here; repeat application is
// rejected rather than double-discounting. The price clamps at zero.
func (b *Booking) ApplyPromotion(promo *promotion.Promotion, now time.Time) (pricing.Money, error) {
	if b.status.IsTerminal() {
		return pricing.Money{}, ErrBookingClosed
	}
	if !promo.BelongsTo(b.businessID) {
		return pricing.Money{}, ErrPromotionWrongBusiness
	}
	if b.appliedPromotionID != nil {
		return pricing.Money{}, ErrPromotionAlreadyApplied
	}
	if err := promo.ValidateUsage(now); err != nil {
		return pricing.Money{}, err
	}

	discount := promo.Discount(b.totalPrice)
	b.totalPrice = b.totalPrice.Sub(discount).FloorZero()
	id := promo.ID()
	b.appliedPromotionID = &id
	return discount, nil
}

func (b *Booking) IsWalkIn() bool {
	return b.guestID == nil
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) BusinessID() uuid.UUID          { return b.businessID }
func (b *Booking) UnitID() uuid.UUID              { return b.unitID }
func (b *Booking) GuestID() *uuid.UUID            { return b.guestID }
func (b *Booking) CheckInDate() time.Time         { return b.checkIn }
func (b *Booking) CheckOutDate() time.Time        { return b.checkOut }
func (b *Booking) Nights() int                    { return b.nights }
func (b *Booking) TotalPrice() pricing.Money      { return b.totalPrice }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) VerifiedPayment() bool          { return b.verifiedPayment }
func (b *Booking) PaymentProofRef() *string       { return b.paymentProofRef }
func (b *Booking) AppliedPromotionID() *uuid.UUID { return b.appliedPromotionID }
func (b *Booking) GuestIdentity() *GuestIdentity  { return b.guestIdentity }
func (b *Booking) DamageNote() *string            { return b.damageNote }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }
