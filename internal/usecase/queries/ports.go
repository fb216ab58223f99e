package queries

import (
	"context"

	"stayops/internal/domain/audit"
	"stayops/internal/domain/booking"
	"stayops/internal/domain/business"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/promotion"
	"stayops/internal/domain/settlement"
	"stayops/internal/domain/unit"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a query.
type Actor = shared.Actor

var ErrForbidden = errs.New("actor may not read this business")

type BookingReader interface {
	FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*booking.Booking, error)
	ListByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) ([]*booking.Booking, error)
	ListFigures(ctx context.Context, q db.DBTX, businessID *uuid.UUID) ([]settlement.BookingFigure, error)
}

type UnitReader interface {
	FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*unit.Unit, error)
	ListByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) ([]*unit.Unit, error)
}

type BusinessReader interface {
	FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*business.Business, error)
}

type PricingRuleReader interface {
	ListByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) ([]*pricing.Rule, error)
}

type PromotionReader interface {
	ListByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) ([]*promotion.Promotion, error)
}

type TransactionReader interface {
	List(ctx context.Context, q db.DBTX, businessID *uuid.UUID) ([]*settlement.Transaction, error)
}

type AuditReader interface {
	ListByEntity(ctx context.Context, q db.DBTX, kind audit.EntityKind, entityID uuid.UUID) ([]audit.Entry, error)
}
