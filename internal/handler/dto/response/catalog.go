package response

import (
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/promotion"
	"stayops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PricingRuleResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	AdjustmentType string          `json:"adjustmentType"`
	Scope          string          `json:"scope"`
	Value          decimal.Decimal `json:"value"`
	Active         bool            `json:"active"`
	ValidFrom      *time.Time      `json:"validFrom,omitempty"`
	ValidTo        *time.Time      `json:"validTo,omitempty"`
}

type PromotionResponse struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"`
	DiscountType string          `json:"discountType"`
	Value        decimal.Decimal `json:"value"`
	Active       bool            `json:"active"`
	ValidFrom    *time.Time      `json:"validFrom,omitempty"`
	ValidTo      *time.Time      `json:"validTo,omitempty"`
}

type QuoteResponse struct {
	UnitID     uuid.UUID       `json:"unitId"`
	CheckIn    time.Time       `json:"checkIn"`
	CheckOut   time.Time       `json:"checkOut"`
	Nights     int             `json:"nights"`
	RoomTotal  decimal.Decimal `json:"roomTotal"`
	ServiceFee decimal.Decimal `json:"serviceFee"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

func FromPricingRule(r *pricing.Rule) *PricingRuleResponse {
	return &PricingRuleResponse{
		ID:             r.ID(),
		Name:           r.Name(),
		AdjustmentType: string(r.AdjustmentType()),
		Scope:          string(r.Scope()),
		Value:          r.Value(),
		Active:         r.Active(),
		ValidFrom:      r.ValidFrom(),
		ValidTo:        r.ValidTo(),
	}
}

func FromPromotion(p *promotion.Promotion) *PromotionResponse {
	return &PromotionResponse{
		ID:           p.ID(),
		Code:         p.Code(),
		DiscountType: string(p.DiscountType()),
		Value:        p.Value(),
		Active:       p.Active(),
		ValidFrom:    p.ValidFrom(),
		ValidTo:      p.ValidTo(),
	}
}

func FromPricingRuleViews(views []*queries.PricingRuleView) []*PricingRuleResponse {
	resp := make([]*PricingRuleResponse, 0, len(views))
	_ = copier.Copy(&resp, &views)
	return resp
}

func FromPromotionViews(views []*queries.PromotionView) []*PromotionResponse {
	resp := make([]*PromotionResponse, 0, len(views))
	_ = copier.Copy(&resp, &views)
	return resp
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
