//go:build unit || e2e

package builder

import (
	"time"

	"stayops/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleBuilder struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Name           string
	AdjustmentType pricing.AdjustmentType
	Scope          pricing.RuleScope
	Value          decimal.Decimal
	Active         bool
	ValidFrom      *time.Time
	ValidTo        *time.Time
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		ID:             uuid.New(),
		BusinessID:     uuid.New(),
		Name:           "Weekend markup",
		AdjustmentType: pricing.AdjustmentPercentage,
		Scope:          pricing.ScopeWeekend,
		Value:          decimal.NewFromInt(15),
		Active:         true,
	}
}

func (r *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(r)
	return r
}

func (r *RuleBuilder) BuildDomain() *pricing.Rule {
	return pricing.ReconstructRule(
		r.ID, r.BusinessID,
		r.Name,
		r.AdjustmentType,
		r.Scope,
		r.Value,
		r.Active,
		r.ValidFrom, r.ValidTo,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	)
}
