package request

import (
	"strings"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/promotion"
	"stayops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePricingRuleRequest struct {
	Name           string          `json:"name" binding:"required"`
	AdjustmentType string          `json:"adjustment_type" binding:"required"`
	Scope          string          `json:"scope" binding:"required"`
	Value          decimal.Decimal `json:"value" binding:"required"`
	ValidFrom      *time.Time      `json:"valid_from,omitempty"`
	ValidTo        *time.Time      `json:"valid_to,omitempty"`
}

func (r CreatePricingRuleRequest) ToParams(businessID uuid.UUID) commands.CreatePricingRuleParams {
	return commands.CreatePricingRuleParams{
		BusinessID:     businessID,
		Name:           r.Name,
		AdjustmentType: pricing.AdjustmentType(r.AdjustmentType),
		Scope:          pricing.RuleScope(r.Scope),
		Value:          r.Value,
		ValidFrom:      r.ValidFrom,
		ValidTo:        r.ValidTo,
	}
}

type CreatePromotionRequest struct {
	Code         string          `json:"code" binding:"required"`
	DiscountType string          `json:"discount_type" binding:"required"`
	Value        decimal.Decimal `json:"value" binding:"required"`
	ValidFrom    *time.Time      `json:"valid_from,omitempty"`
	ValidTo      *time.Time      `json:"valid_to,omitempty"`
}

func (r CreatePromotionRequest) ToParams(businessID uuid.UUID) commands.CreatePromotionParams {
	return commands.CreatePromotionParams{
		BusinessID:   businessID,
		Code:         strings.TrimSpace(r.Code),
		DiscountType: promotion.DiscountType(r.DiscountType),
		Value:        r.Value,
		ValidFrom:    r.ValidFrom,
		ValidTo:      r.ValidTo,
	}
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}
