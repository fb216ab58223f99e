package queries

import (
	"context"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

// CatalogQueries serves the inventory views: units plus the owner-side
// pricing toolkit. Unit reads are public (guests browse them); rule and
// promotion listings are scoped to the owning business.
type CatalogQueries interface {
	GetUnit(ctx context.Context, unitID uuid.UUID) (*UnitView, error)
	ListUnits(ctx context.Context, businessID uuid.UUID) ([]*UnitView, error)
	ListPricingRules(ctx context.Context, businessID uuid.UUID, act Actor) ([]*PricingRuleView, error)
	ListPromotions(ctx context.Context, businessID uuid.UUID, act Actor) ([]*PromotionView, error)
}

type catalogQueriesImpl struct {
	unitRepo  UnitReader
	ruleRepo  PricingRuleReader
	promoRepo PromotionReader
	pool      db.DBTX
}

func NewCatalogQueries(unitRepo UnitReader, ruleRepo PricingRuleReader, promoRepo PromotionReader, pool db.DBTX) CatalogQueries {
	return &catalogQueriesImpl{
		unitRepo:  unitRepo,
		ruleRepo:  ruleRepo,
		promoRepo: promoRepo,
		pool:      pool,
	}
}

func (q *catalogQueriesImpl) GetUnit(ctx context.Context, unitID uuid.UUID) (*UnitView, error) {
	u, err := q.unitRepo.FindByID(ctx, q.pool, unitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnitNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return unitView(u), nil
}

func (q *catalogQueriesImpl) ListUnits(ctx context.Context, businessID uuid.UUID) ([]*UnitView, error) {
	units, err := q.unitRepo.ListByBusiness(ctx, q.pool, businessID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*UnitView, 0, len(units))
	for _, u := range units {
		views = append(views, unitView(u))
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListPricingRules(ctx context.Context, businessID uuid.UUID, act Actor) ([]*PricingRuleView, error) {
	if !act.CanAccessBusiness(businessID) {
		return nil, ErrForbidden
	}

	rules, err := q.ruleRepo.ListByBusiness(ctx, q.pool, businessID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*PricingRuleView, 0, len(rules))
	for _, r := range rules {
		views = append(views, pricingRuleView(r))
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListPromotions(ctx context.Context, businessID uuid.UUID, act Actor) ([]*PromotionView, error) {
	if !act.CanAccessBusiness(businessID) {
		return nil, ErrForbidden
	}

	promos, err := q.promoRepo.ListByBusiness(ctx, q.pool, businessID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*PromotionView, 0, len(promos))
	for _, p := range promos {
		views = append(views, promotionView(p))
	}
	return views, nil
}
