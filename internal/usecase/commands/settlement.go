package commands

import (
	"context"
	"fmt"
	"log/slog"

	"stayops/internal/domain/audit"
	"stayops/internal/domain/booking"
	"stayops/internal/domain/entitlement"
	"stayops/internal/domain/settlement"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/infra/events"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

type SettlementCommands interface {
	// SettleCompletedBooking records the platform commission for a completed
	// booking. Idempotent per booking: a replay returns the existing entry.
	SettleCompletedBooking(ctx context.Context, bookingID uuid.UUID, act Actor) (*settlement.Transaction, error)
}

type settlementCommandsImpl struct {
	bookingRepo     BookingRepository
	businessRepo    BusinessRepository
	transactionRepo TransactionRepository
	auditRepo       AuditRepository
	publisher       EventPublisher
	txm             db.TxManager
	clock           clock.Clock
}

func NewSettlementCommands(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	transactionRepo TransactionRepository,
	auditRepo AuditRepository,
	publisher EventPublisher,
	txm db.TxManager,
	clk clock.Clock,
) SettlementCommands {
	return &settlementCommandsImpl{
		bookingRepo:     bookingRepo,
		businessRepo:    businessRepo,
		transactionRepo: transactionRepo,
		auditRepo:       auditRepo,
		publisher:       publisher,
		txm:             txm,
		clock:           clk,
	}
}

func (c *settlementCommandsImpl) SettleCompletedBooking(ctx context.Context, bookingID uuid.UUID, act Actor) (*settlement.Transaction, error) {
	var result *settlement.Transaction
	var replayed bool

	err := c.txm.WithinTx(ctx, func(tx db.DBTX) error {
		b, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !act.CanAccessBusiness(b.BusinessID()) {
			return ErrForbidden
		}
		if b.Status() != booking.StatusCompleted {
			return errs.Mark(errs.Newf("booking status is %s", b.Status()), errs.ErrBookingNotCompleted)
		}

		// Replay guard: the booking row is locked, so the existence check
		// and insert cannot race with another settlement of the same booking.
		existing, err := c.transactionRepo.FindCommissionByBookingID(ctx, tx, bookingID)
		if err == nil {
			result = existing
			replayed = true
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		businessEntity, err := c.businessRepo.FindByID(ctx, tx, b.BusinessID())
		if err != nil {
			return errs.Mark(err, errs.ErrBusinessNotFound)
		}

		rate := entitlement.LimitsFor(businessEntity.EffectivePlan(c.clock.Now())).CommissionRate
		if override := businessEntity.CommissionOverride(); override != nil {
			rate = *override
		}

		commission, err := settlement.NewCommission(b.BusinessID(), b.ID(), b.TotalPrice(), rate, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if _, err := c.transactionRepo.Create(ctx, tx, commission); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		detail := fmt.Sprintf("commission %s recorded at %s%% of %s", commission.Amount(), rate, b.TotalPrice())
		entry := audit.NewEntry(audit.EntityBooking, b.ID(), act.ID, "settle", detail, c.clock.Now())
		if err := c.auditRepo.Append(ctx, tx, entry); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = commission
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !replayed {
		evt := events.BookingEvent{
			Kind:       events.EventSettlementRecorded,
			BookingID:  bookingID,
			BusinessID: result.BusinessID(),
			OccurredAt: c.clock.Now(),
		}
		if pubErr := c.publisher.Publish(ctx, evt); pubErr != nil {
			slog.Warn("failed to publish settlement event", "booking_id", bookingID, "error", pubErr)
		}
	}

	return result, nil
}
