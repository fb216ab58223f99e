package queries

import (
	"context"

	"stayops/internal/domain/entitlement"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

type EntitlementQueries interface {
	GetEntitlements(ctx context.Context, businessID uuid.UUID, act Actor) (*EntitlementsView, error)
}

type entitlementQueriesImpl struct {
	businessRepo BusinessReader
	resolver     *entitlement.Resolver
	pool         db.DBTX
	clock        clock.Clock
}

func NewEntitlementQueries(businessRepo BusinessReader, resolver *entitlement.Resolver, pool db.DBTX, clk clock.Clock) EntitlementQueries {
	return &entitlementQueriesImpl{
		businessRepo: businessRepo,
		resolver:     resolver,
		pool:         pool,
		clock:        clk,
	}
}

// GetEntitlements resolves what the business's dashboard may expose right
// now. A lapsed subscription resolves with Basic limits until renewed.
func (q *entitlementQueriesImpl) GetEntitlements(ctx context.Context, businessID uuid.UUID, act Actor) (*EntitlementsView, error) {
	if !act.CanAccessBusiness(businessID) {
		return nil, ErrForbidden
	}

	b, err := q.businessRepo.FindByID(ctx, q.pool, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBusinessNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	plan := b.EffectivePlan(q.clock.Now())
	resolved := q.resolver.Resolve(b.Category(), plan, b.CommissionOverride())

	modules := make([]string, 0, len(resolved.Modules))
	for _, m := range resolved.Modules {
		modules = append(modules, string(m))
	}

	return &EntitlementsView{
		BusinessID:     businessID,
		Plan:           plan.String(),
		Modules:        modules,
		UnitQuota:      resolved.UnitQuota,
		CommissionRate: resolved.CommissionRate,
	}, nil
}
