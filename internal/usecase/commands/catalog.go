package commands

import (
	"context"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/promotion"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogCommands covers the owner-side pricing toolkit: dynamic pricing
// rules and promotion codes.
type CatalogCommands interface {
	CreatePricingRule(ctx context.Context, params CreatePricingRuleParams, act Actor) (*pricing.Rule, error)
	SetPricingRuleActive(ctx context.Context, businessID, ruleID uuid.UUID, active bool, act Actor) error
	CreatePromotion(ctx context.Context, params CreatePromotionParams, act Actor) (*promotion.Promotion, error)
	SetPromotionActive(ctx context.Context, businessID, promotionID uuid.UUID, active bool, act Actor) error
}

type CreatePricingRuleParams struct {
	BusinessID     uuid.UUID
	Name           string
	AdjustmentType pricing.AdjustmentType
	Scope          pricing.RuleScope
	Value          decimal.Decimal
	ValidFrom      *time.Time
	ValidTo        *time.Time
}

type CreatePromotionParams struct {
	BusinessID   uuid.UUID
	Code         string
	DiscountType promotion.DiscountType
	Value        decimal.Decimal
	ValidFrom    *time.Time
	ValidTo      *time.Time
}

type catalogCommandsImpl struct {
	ruleRepo  PricingRuleRepository
	promoRepo PromotionRepository
	pool      db.DBTX
}

func NewCatalogCommands(ruleRepo PricingRuleRepository, promoRepo PromotionRepository, pool db.DBTX) CatalogCommands {
	return &catalogCommandsImpl{
		ruleRepo:  ruleRepo,
		promoRepo: promoRepo,
		pool:      pool,
	}
}

func (c *catalogCommandsImpl) CreatePricingRule(ctx context.Context, params CreatePricingRuleParams, act Actor) (*pricing.Rule, error) {
	if !act.CanAccessBusiness(params.BusinessID) {
		return nil, ErrForbidden
	}

	rule, err := pricing.NewRule(params.BusinessID, params.Name, params.AdjustmentType, params.Scope, params.Value, params.ValidFrom, params.ValidTo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := c.ruleRepo.Create(ctx, c.pool, rule); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rule, nil
}

func (c *catalogCommandsImpl) SetPricingRuleActive(ctx context.Context, businessID, ruleID uuid.UUID, active bool, act Actor) error {
	if !act.CanAccessBusiness(businessID) {
		return ErrForbidden
	}

	if err := c.ruleRepo.SetActive(ctx, c.pool, ruleID, active); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrPricingRuleNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) CreatePromotion(ctx context.Context, params CreatePromotionParams, act Actor) (*promotion.Promotion, error) {
	if !act.CanAccessBusiness(params.BusinessID) {
		return nil, ErrForbidden
	}

	promo, err := promotion.NewPromotion(params.BusinessID, params.Code, params.DiscountType, params.Value, params.ValidFrom, params.ValidTo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := c.promoRepo.Create(ctx, c.pool, promo); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return promo, nil
}

func (c *catalogCommandsImpl) SetPromotionActive(ctx context.Context, businessID, promotionID uuid.UUID, active bool, act Actor) error {
	if !act.CanAccessBusiness(businessID) {
		return ErrForbidden
	}

	if err := c.promoRepo.SetActive(ctx, c.pool, promotionID, active); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrPromotionNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
