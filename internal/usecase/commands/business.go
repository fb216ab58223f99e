package commands

import (
	"context"
	"log/slog"
	"time"

	"stayops/internal/domain/actor"
	"stayops/internal/domain/business"
	"stayops/internal/domain/entitlement"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegisterBusinessParams struct {
	Name            string
	Category        string
	Plan            entitlement.Plan
	Trial           bool
	SubscriptionEnd *time.Time
}

// BusinessCommands covers tenant registration plus the admin-only levers:
// status moderation, commission overrides and the subscription sweep.
type BusinessCommands interface {
	RegisterBusiness(ctx context.Context, params RegisterBusinessParams) (*business.Business, error)
	SetBusinessStatus(ctx context.Context, businessID uuid.UUID, status business.Status, act Actor) (*business.Business, error)
	SetCommissionOverride(ctx context.Context, businessID uuid.UUID, rate *decimal.Decimal, act Actor) (*business.Business, error)
	ExpireSubscriptions(ctx context.Context) (int, error)
}

type businessCommandsImpl struct {
	businessRepo BusinessRepository
	pool         db.DBTX
	clock        clock.Clock
}

func NewBusinessCommands(businessRepo BusinessRepository, pool db.DBTX, clk clock.Clock) BusinessCommands {
	return &businessCommandsImpl{
		businessRepo: businessRepo,
		pool:         pool,
		clock:        clk,
	}
}

func (c *businessCommandsImpl) RegisterBusiness(ctx context.Context, params RegisterBusinessParams) (*business.Business, error) {
	b, err := business.NewBusiness(params.Name, params.Category, params.Plan, params.Trial, params.SubscriptionEnd)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := c.businessRepo.Create(ctx, c.pool, b); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

func (c *businessCommandsImpl) SetBusinessStatus(ctx context.Context, businessID uuid.UUID, status business.Status, act Actor) (*business.Business, error) {
	if act.Role != actor.RoleAdmin {
		return nil, ErrForbidden
	}

	b, err := c.findBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if err := b.SetStatus(status); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.businessRepo.Update(ctx, c.pool, b); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

func (c *businessCommandsImpl) SetCommissionOverride(ctx context.Context, businessID uuid.UUID, rate *decimal.Decimal, act Actor) (*business.Business, error) {
	if act.Role != actor.RoleAdmin {
		return nil, ErrForbidden
	}
	if rate != nil && rate.IsNegative() {
		return nil, errs.Mark(errs.New("commission rate cannot be negative"), errs.ErrDomainValidation)
	}

	b, err := c.findBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	b.SetCommissionOverride(rate)
	if err := c.businessRepo.Update(ctx, c.pool, b); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

// ExpireSubscriptions downgrades every active business whose subscription
// ran out. Entitlements already resolve lapsed plans as Basic on read; the
// sweep makes the downgrade durable. Invoked on a schedule, not by callers.
func (c *businessCommandsImpl) ExpireSubscriptions(ctx context.Context) (int, error) {
	expired, err := c.businessRepo.ListExpiredActive(ctx, c.pool, c.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	lapsed := 0
	for _, b := range expired {
		b.Lapse()
		if err := c.businessRepo.Update(ctx, c.pool, b); err != nil {
			slog.Warn("failed to lapse business subscription", "business_id", b.ID(), "error", err)
			continue
		}
		lapsed++
	}
	return lapsed, nil
}

func (c *businessCommandsImpl) findBusiness(ctx context.Context, businessID uuid.UUID) (*business.Business, error) {
	b, err := c.businessRepo.FindByID(ctx, c.pool, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBusinessNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}
