package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAdjustmentType = errors.New("invalid adjustment type")
	ErrInvalidRuleScope      = errors.New("invalid rule scope")
)

type AdjustmentType string

const (
	AdjustmentPercentage AdjustmentType = "percentage"
	AdjustmentFixed      AdjustmentType = "fixed"
)

func (t AdjustmentType) IsValid() bool {
	return t == AdjustmentPercentage || t == AdjustmentFixed
}

type RuleScope string

const (
	ScopeWeekend  RuleScope = "weekend"
	ScopeSeasonal RuleScope = "seasonal"
)

func (s RuleScope) IsValid() bool {
	return s == ScopeWeekend || s == ScopeSeasonal
}

// Rule is one dynamic-pricing adjustment owned by a business. Value is
// signed: markups are positive, markdowns negative. Rules apply additively
// against the room total, never compounding.
type Rule struct {
	id             uuid.UUID
	businessID     uuid.UUID
	name           string
	adjustmentType AdjustmentType
	scope          RuleScope
	value          decimal.Decimal
	active         bool
	validFrom      *time.Time
	validTo        *time.Time
	createdAt      time.Time
}

func NewRule(businessID uuid.UUID, name string, adjustmentType AdjustmentType, scope RuleScope, value decimal.Decimal, validFrom, validTo *time.Time) (*Rule, error) {
	if !adjustmentType.IsValid() {
		return nil, ErrInvalidAdjustmentType
	}
	if !scope.IsValid() {
		return nil, ErrInvalidRuleScope
	}
	return &Rule{
		id:             uuid.New(),
		businessID:     businessID,
		name:           name,
		adjustmentType: adjustmentType,
		scope:          scope,
		value:          value,
		active:         true,
		validFrom:      validFrom,
		validTo:        validTo,
	}, nil
}

func ReconstructRule(
	id, businessID uuid.UUID,
	name string,
	adjustmentType AdjustmentType,
	scope RuleScope,
	value decimal.Decimal,
	active bool,
	validFrom, validTo *time.Time,
	createdAt time.Time,
) *Rule {
	return &Rule{
		id:             id,
		businessID:     businessID,
		name:           name,
		adjustmentType: adjustmentType,
		scope:          scope,
		value:          value,
		active:         active,
		validFrom:      validFrom,
		validTo:        validTo,
		createdAt:      createdAt,
	}
}

func (r *Rule) SetActive(active bool) {
	r.active = active
}

// AppliesAt reports whether the rule covers a stay starting at checkIn.
// Rules without a date range cover every stay while active.
func (r *Rule) AppliesAt(checkIn time.Time) bool {
	if !r.active {
		return false
	}
	if r.validFrom != nil && checkIn.Before(*r.validFrom) {
		return false
	}
	if r.validTo != nil && checkIn.After(*r.validTo) {
		return false
	}
	return true
}

// AdjustmentFor computes this rule's contribution against the room total.
func (r *Rule) AdjustmentFor(roomTotal Money) Money {
	if r.adjustmentType == AdjustmentPercentage {
		return roomTotal.Percent(r.value)
	}
	return NewMoney(r.value)
}

func (r *Rule) ID() uuid.UUID                  { return r.id }
func (r *Rule) BusinessID() uuid.UUID          { return r.businessID }
func (r *Rule) Name() string                   { return r.name }
func (r *Rule) AdjustmentType() AdjustmentType { return r.adjustmentType }
func (r *Rule) Scope() RuleScope               { return r.scope }
func (r *Rule) Value() decimal.Decimal         { return r.value }
func (r *Rule) Active() bool                   { return r.active }
func (r *Rule) ValidFrom() *time.Time          { return r.validFrom }
func (r *Rule) ValidTo() *time.Time            { return r.validTo }
func (r *Rule) CreatedAt() time.Time           { return r.createdAt }
