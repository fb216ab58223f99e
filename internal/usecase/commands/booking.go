package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"stayops/internal/domain/audit"
	"stayops/internal/domain/booking"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/promotion"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/infra/events"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrForbidden = errs.New("actor may not operate on this business")

type CreateBookingParams struct {
	UnitID        uuid.UUID
	GuestID       *uuid.UUID
	WalkIn        bool
	CheckIn       time.Time
	CheckOut      time.Time
	PriceOverride *decimal.Decimal

	// Zero key skips deduplication.
	IdempotencyKey uuid.UUID
}

type RescheduleParams struct {
	CheckIn  time.Time
	CheckOut time.Time
	AuthRef  string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams, act Actor) (*booking.Booking, error)
	Approve(ctx context.Context, bookingID uuid.UUID, act Actor) (*booking.Booking, error)
	Reject(ctx context.Context, bookingID uuid.UUID, act Actor) (*booking.Booking, error)
	CheckIn(ctx context.Context, bookingID uuid.UUID, identity booking.GuestIdentity, act Actor) (*booking.Booking, error)
	CheckOut(ctx context.Context, bookingID uuid.UUID, damageNote *string, act Actor) (*booking.Booking, error)
	Reschedule(ctx context.Context, bookingID uuid.UUID, params RescheduleParams, act Actor) (*booking.Booking, error)
	SetPaymentVerified(ctx context.Context, bookingID uuid.UUID, verified bool, proofRef *string, act Actor) (*booking.Booking, error)
	ApplyPromotion(ctx context.Context, bookingID uuid.UUID, code string, act Actor) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	bookingRepo  BookingRepository
	unitRepo     UnitRepository
	businessRepo BusinessRepository
	promoRepo    PromotionRepository
	ruleRepo     PricingRuleRepository
	auditRepo    AuditRepository
	idemRepo     IdempotencyRepository
	factory      *booking.Factory
	publisher    EventPublisher
	pool         db.DBTX
	txm          db.TxManager
	clock        clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	unitRepo UnitRepository,
	businessRepo BusinessRepository,
	promoRepo PromotionRepository,
	ruleRepo PricingRuleRepository,
	auditRepo AuditRepository,
	idemRepo IdempotencyRepository,
	factory *booking.Factory,
	publisher EventPublisher,
	pool db.DBTX,
	txm db.TxManager,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:  bookingRepo,
		unitRepo:     unitRepo,
		businessRepo: businessRepo,
		promoRepo:    promoRepo,
		ruleRepo:     ruleRepo,
		auditRepo:    auditRepo,
		idemRepo:     idemRepo,
		factory:      factory,
		publisher:    publisher,
		pool:         pool,
		txm:          txm,
		clock:        clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams, act Actor) (*booking.Booking, error) {
	if params.IdempotencyKey != uuid.Nil {
		existing, err := c.claimIdempotencyKey(ctx, params, act)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	unitEntity, err := c.unitRepo.FindByID(ctx, c.pool, params.UnitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnitNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	businessEntity, err := c.businessRepo.FindByID(ctx, c.pool, unitEntity.BusinessID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBusinessNotFound)
	}
	if !businessEntity.IsActive() {
		return nil, errs.ErrBusinessSuspended
	}

	// Walk-ins and manual price overrides are desk actions on the unit's
	// own business.
	if params.WalkIn || params.PriceOverride != nil {
		if !act.Role.CanOperateDesk() || !act.CanAccessBusiness(unitEntity.BusinessID()) {
			return nil, ErrForbidden
		}
	}

	rules, err := c.ruleRepo.ListByBusiness(ctx, c.pool, unitEntity.BusinessID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	guestID := params.GuestID
	if params.WalkIn {
		guestID = nil
	}

	var serviceFee *pricing.Money
	if fee := businessEntity.ServiceFee(); fee != nil {
		m := pricing.NewMoney(*fee)
		serviceFee = &m
	}

	var priceOverride *pricing.Money
	if params.PriceOverride != nil {
		m := pricing.NewMoney(*params.PriceOverride)
		priceOverride = &m
	}

	bookingEntity, err := c.factory.Create(booking.CreateSpec{
		Unit:          unitEntity,
		GuestID:       guestID,
		CheckIn:       params.CheckIn,
		CheckOut:      params.CheckOut,
		Rules:         rules,
		ServiceFee:    serviceFee,
		PriceOverride: priceOverride,
	})
	if err != nil {
		switch {
		case errs.Is(err, booking.ErrUnitNotBookable):
			return nil, errs.Mark(err, errs.ErrUnitUnavailable)
		case errs.Is(err, booking.ErrInvalidDateRange):
			return nil, errs.Mark(err, errs.ErrInvalidDateRange)
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	err = c.withTx(ctx, func(tx db.DBTX) error {
		if _, err := c.bookingRepo.Create(ctx, tx, bookingEntity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if params.IdempotencyKey != uuid.Nil {
			if err := c.idemRepo.MarkCompleted(ctx, tx, params.IdempotencyKey, act.ID, bookingEntity.ID()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		detail := fmt.Sprintf("booking created for %d night(s), total %s", bookingEntity.Nights(), bookingEntity.TotalPrice())
		if bookingEntity.IsWalkIn() {
			detail += " (walk-in, desk-settled)"
		}
		return c.appendAudit(ctx, tx, bookingEntity.ID(), act, "create", detail)
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, events.EventBookingCreated, bookingEntity)
	if bookingEntity.Status() == booking.StatusConfirmed {
		c.publish(ctx, events.EventBookingConfirmed, bookingEntity)
	}
	return bookingEntity, nil
}

func (c *bookingCommandsImpl) Approve(ctx context.Context, bookingID uuid.UUID, act Actor) (*booking.Booking, error) {
	b, err := c.transition(ctx, bookingID, act, "approve", "booking approved", func(b *booking.Booking) (string, error) {
		return "", b.Approve()
	})
	if err != nil {
		return nil, err
	}
	c.publish(ctx, events.EventBookingConfirmed, b)
	return b, nil
}

func (c *bookingCommandsImpl) Reject(ctx context.Context, bookingID uuid.UUID, act Actor) (*booking.Booking, error) {
	b, err := c.transition(ctx, bookingID, act, "reject", "booking rejected", func(b *booking.Booking) (string, error) {
		return "", b.Reject()
	})
	if err != nil {
		return nil, err
	}
	c.publish(ctx, events.EventBookingCancelled, b)
	return b, nil
}

func (c *bookingCommandsImpl) CheckIn(ctx context.Context, bookingID uuid.UUID, identity booking.GuestIdentity, act Actor) (*booking.Booking, error) {
	b, err := c.transition(ctx, bookingID, act, "check_in", "guest checked in", func(b *booking.Booking) (string, error) {
		return "identity captured: " + identity.Nationality, b.CheckIn(identity)
	})
	if err != nil {
		return nil, err
	}
	c.publish(ctx, events.EventBookingCheckedIn, b)
	return b, nil
}

// CheckOut closes the stay and, in the same transaction, pushes the booked
// unit into its cleaning cycle so it cannot be rebooked uncleaned.
func (c *bookingCommandsImpl) CheckOut(ctx context.Context, bookingID uuid.UUID, damageNote *string, act Actor) (*booking.Booking, error) {
	var result *booking.Booking
	err := c.withTx(ctx, func(tx db.DBTX) error {
		b, err := c.lockAndAuthorize(ctx, tx, bookingID, act)
		if err != nil {
			return err
		}

		if err := b.CheckOut(damageNote); err != nil {
			return markBookingErr(err)
		}

		unitEntity, err := c.unitRepo.FindByIDForUpdate(ctx, tx, b.UnitID())
		if err != nil {
			return errs.Mark(err, errs.ErrUnitNotFound)
		}
		unitEntity.MarkDirtyAfterCheckout()

		if err := c.bookingRepo.Update(ctx, tx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := c.unitRepo.Update(ctx, tx, unitEntity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		detail := "guest checked out, unit sent to cleaning"
		if damageNote != nil && *damageNote != "" {
			detail += "; damage note: " + *damageNote
		}
		if err := c.appendAudit(ctx, tx, b.ID(), act, "check_out", detail); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, events.EventBookingCompleted, result)
	return result, nil
}

func (c *bookingCommandsImpl) Reschedule(ctx context.Context, bookingID uuid.UUID, params RescheduleParams, act Actor) (*booking.Booking, error) {
	detail := fmt.Sprintf("rescheduled to %s - %s, owner authorization: %s",
		params.CheckIn.Format("2006-01-02"), params.CheckOut.Format("2006-01-02"), params.AuthRef)
	return c.transition(ctx, bookingID, act, "reschedule", detail, func(b *booking.Booking) (string, error) {
		return "", b.Reschedule(params.CheckIn, params.CheckOut, params.AuthRef)
	})
}

func (c *bookingCommandsImpl) SetPaymentVerified(ctx context.Context, bookingID uuid.UUID, verified bool, proofRef *string, act Actor) (*booking.Booking, error) {
	detail := "payment marked unverified"
	if verified {
		detail = "payment verified"
	}
	return c.transition(ctx, bookingID, act, "set_payment", detail, func(b *booking.Booking) (string, error) {
		return "", b.SetPaymentVerified(verified, proofRef)
	})
}

func (c *bookingCommandsImpl) ApplyPromotion(ctx context.Context, bookingID uuid.UUID, code string, act Actor) (*booking.Booking, error) {
	var result *booking.Booking
	err := c.withTx(ctx, func(tx db.DBTX) error {
		b, err := c.lockAndAuthorize(ctx, tx, bookingID, act)
		if err != nil {
			return err
		}

		promo, err := c.promoRepo.FindByCode(ctx, tx, b.BusinessID(), code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrPromotionNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		discount, err := b.ApplyPromotion(promo, c.clock.Now())
		if err != nil {
			return markBookingErr(err)
		}

		if err := c.bookingRepo.Update(ctx, tx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		detail := fmt.Sprintf("promotion %s applied, discount %s, new total %s", promo.Code(), discount, b.TotalPrice())
		if err := c.appendAudit(ctx, tx, b.ID(), act, "apply_promotion", detail); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// transition runs a single-booking state change under the row lock.
func (c *bookingCommandsImpl) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	act Actor,
	action, detail string,
	mutate func(*booking.Booking) (string, error),
) (*booking.Booking, error) {
	var result *booking.Booking
	err := c.withTx(ctx, func(tx db.DBTX) error {
		b, err := c.lockAndAuthorize(ctx, tx, bookingID, act)
		if err != nil {
			return err
		}

		extra, err := mutate(b)
		if err != nil {
			return markBookingErr(err)
		}

		if err := c.bookingRepo.Update(ctx, tx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if extra != "" {
			detail += "; " + extra
		}
		if err := c.appendAudit(ctx, tx, b.ID(), act, action, detail); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *bookingCommandsImpl) lockAndAuthorize(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, act Actor) (*booking.Booking, error) {
	b, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !act.CanAccessBusiness(b.BusinessID()) {
		return nil, ErrForbidden
	}
	return b, nil
}

// claimIdempotencyKey inserts-or-inspects the key. A completed record
// resolves to the booking it produced; a processing record with a
// different request hash means the key was reused for another request.
func (c *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, params CreateBookingParams, act Actor) (*booking.Booking, error) {
	requestHash := createRequestHash(params)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	if err := c.idemRepo.TryInsert(ctx, params.IdempotencyKey, act.ID, "POST /bookings", requestHash, expiresAt); err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	rec, err := c.idemRepo.Get(ctx, params.IdempotencyKey, act.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	switch rec.Status {
	case "completed":
		if rec.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed idempotency record has no booking"), errs.ErrIdempotencyCheckFailed)
		}
		b, err := c.bookingRepo.FindByID(ctx, c.pool, *rec.ResultBookingID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		return b, nil
	case "processing":
		if rec.RequestHash != requestHash {
			return nil, errs.Mark(errs.New("idempotency key reused with a different request"), errs.ErrBookingConflict)
		}
		// Fresh claim, or a same-request retry racing the original.
		return nil, nil
	default:
		return nil, errs.Mark(errs.Newf("unexpected idempotency status %q", rec.Status), errs.ErrIdempotencyCheckFailed)
	}
}

func createRequestHash(params CreateBookingParams) string {
	payload := fmt.Sprintf("%s|%s|%s|%t|%v",
		params.UnitID, params.CheckIn.UTC().Format(time.RFC3339),
		params.CheckOut.UTC().Format(time.RFC3339), params.WalkIn, params.PriceOverride)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func (c *bookingCommandsImpl) appendAudit(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, act Actor, action, detail string) error {
	entry := audit.NewEntry(audit.EntityBooking, bookingID, act.ID, action, detail, c.clock.Now())
	if err := c.auditRepo.Append(ctx, tx, entry); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) publish(ctx context.Context, kind string, b *booking.Booking) {
	evt := events.BookingEvent{
		Kind:       kind,
		BookingID:  b.ID(),
		BusinessID: b.BusinessID(),
		OccurredAt: c.clock.Now(),
	}
	if err := c.publisher.Publish(ctx, evt); err != nil {
		slog.Warn("failed to publish booking event", "kind", kind, "booking_id", b.ID(), "error", err)
	}
}

// markBookingErr maps domain sentinels onto the shared usecase error set.
func markBookingErr(err error) error {
	switch {
	case errs.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errs.Is(err, booking.ErrBookingClosed):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errs.Is(err, booking.ErrInvalidDateRange):
		return errs.Mark(err, errs.ErrInvalidDateRange)
	case errs.Is(err, booking.ErrPaymentNotVerified):
		return errs.Mark(err, errs.ErrPaymentNotVerified)
	case errs.Is(err, booking.ErrPromotionWrongBusiness):
		return errs.Mark(err, errs.ErrInvalidPromotionScope)
	case errs.Is(err, booking.ErrPromotionAlreadyApplied):
		return errs.Mark(err, errs.ErrPromotionAlreadyApplied)
	case errs.Is(err, promotion.ErrPromotionExpired),
		errs.Is(err, promotion.ErrPromotionNotYetValid),
		errs.Is(err, promotion.ErrPromotionInactive):
		return errs.Mark(err, errs.ErrPromotionExpired)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
