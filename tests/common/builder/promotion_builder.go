//go:build unit || e2e

package builder

import (
	"time"

	dompromotion "stayops/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromotionBuilder struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	Code         string
	DiscountType dompromotion.DiscountType
	Value        decimal.Decimal
	ValidFrom    *time.Time
	ValidTo      *time.Time
	Active       bool
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		ID:           uuid.New(),
		BusinessID:   uuid.New(),
		Code:         "SUMMER25",
		DiscountType: dompromotion.DiscountPercentage,
		Value:        decimal.NewFromInt(25),
		Active:       true,
	}
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(p)
	return p
}

func (p *PromotionBuilder) BuildDomain() *dompromotion.Promotion {
	return dompromotion.ReconstructPromotion(
		p.ID, p.BusinessID,
		p.Code,
		p.DiscountType,
		p.Value,
		p.ValidFrom, p.ValidTo,
		p.Active,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	)
}
