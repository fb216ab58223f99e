package commands

import (
	"context"
	"time"

	"stayops/internal/domain/audit"
	"stayops/internal/domain/booking"
	"stayops/internal/domain/business"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/promotion"
	"stayops/internal/domain/settlement"
	"stayops/internal/domain/unit"
	"stayops/internal/infra/db"
	"stayops/internal/infra/events"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command.
type Actor = shared.Actor

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type UnitRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *unit.Unit) (uuid.UUID, error)
	FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*unit.Unit, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*unit.Unit, error)
	Update(ctx context.Context, tx db.DBTX, u *unit.Unit) error
	CountByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) (int, error)
}

type BusinessRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *business.Business) (uuid.UUID, error)
	FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*business.Business, error)
	Update(ctx context.Context, tx db.DBTX, b *business.Business) error
	ListExpiredActive(ctx context.Context, q db.DBTX, now time.Time) ([]*business.Business, error)
}

type PromotionRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *promotion.Promotion) (uuid.UUID, error)
	FindByCode(ctx context.Context, q db.DBTX, businessID uuid.UUID, code string) (*promotion.Promotion, error)
	SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error
}

type PricingRuleRepository interface {
	Create(ctx context.Context, tx db.DBTX, rule *pricing.Rule) (uuid.UUID, error)
	ListByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) ([]*pricing.Rule, error)
	SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx db.DBTX, t *settlement.Transaction) (uuid.UUID, error)
	FindCommissionByBookingID(ctx context.Context, q db.DBTX, bookingID uuid.UUID) (*settlement.Transaction, error)
}

type AuditRepository interface {
	Append(ctx context.Context, tx db.DBTX, e audit.Entry) error
}

// IdempotencyRecord mirrors the stored state of a claimed key.
type IdempotencyRecord struct {
	Key             uuid.UUID
	ActorID         uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key, actorID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	Get(ctx context.Context, key, actorID uuid.UUID) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, tx db.DBTX, key, actorID, resultBookingID uuid.UUID) error
}

type EventPublisher interface {
	Publish(ctx context.Context, evt events.BookingEvent) error
}
