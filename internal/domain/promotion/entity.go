package promotion

import (
	"errors"
	"time"

	"stayops/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPromotionExpired     = errors.New("promotion has expired")
	ErrPromotionNotYetValid = errors.New("promotion is not yet valid")
	ErrPromotionInactive    = errors.New("promotion is inactive")
	ErrEmptyCode            = errors.New("promotion code cannot be empty")
	ErrInvalidDiscountType  = errors.New("invalid discount type")
	ErrNegativeDiscount     = errors.New("discount value cannot be negative")
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// Promotion is a per-business discount code. It is applied explicitly to
// one booking at a time by a staff or owner action, never matched
// automatically.
type Promotion struct {
	id           uuid.UUID
	businessID   uuid.UUID
	code         string
	discountType DiscountType
	value        decimal.Decimal
	validFrom    *time.Time
	validTo      *time.Time
	active       bool
	createdAt    time.Time
}

func NewPromotion(businessID uuid.UUID, code string, discountType DiscountType, value decimal.Decimal, validFrom, validTo *time.Time) (*Promotion, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if !discountType.IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if value.IsNegative() {
		return nil, ErrNegativeDiscount
	}
	return &Promotion{
		id:           uuid.New(),
		businessID:   businessID,
		code:         code,
		discountType: discountType,
		value:        value,
		validFrom:    validFrom,
		validTo:      validTo,
		active:       true,
	}, nil
}

func ReconstructPromotion(
	id, businessID uuid.UUID,
	code string,
	discountType DiscountType,
	value decimal.Decimal,
	validFrom, validTo *time.Time,
	active bool,
	createdAt time.Time,
) *Promotion {
	return &Promotion{
		id:           id,
		businessID:   businessID,
		code:         code,
		discountType: discountType,
		value:        value,
		validFrom:    validFrom,
		validTo:      validTo,
		active:       active,
		createdAt:    createdAt,
	}
}

func (p *Promotion) SetActive(active bool) {
	p.active = active
}

func (p *Promotion) IsValidAt(t time.Time) bool {
	if !p.active {
		return false
	}
	if p.validFrom != nil && t.Before(*p.validFrom) {
		return false
	}
	if p.validTo != nil && t.After(*p.validTo) {
		return false
	}
	return true
}

func (p *Promotion) ValidateUsage(t time.Time) error {
	if !p.active {
		return ErrPromotionInactive
	}
	if p.validFrom != nil && t.Before(*p.validFrom) {
		return ErrPromotionNotYetValid
	}
	if p.validTo != nil && t.After(*p.validTo) {
		return ErrPromotionExpired
	}
	return nil
}

// BelongsTo guards promotion scope: a promotion may only discount bookings
// of its own business.
func (p *Promotion) BelongsTo(businessID uuid.UUID) bool {
	return p.businessID == businessID
}

// Discount computes the deduction for a booking total. Percentage codes
// take value% of the total; fixed codes take the flat value. Callers clamp
// the resulting price at zero.
func (p *Promotion) Discount(total pricing.Money) pricing.Money {
	if p.discountType == DiscountPercentage {
		return total.Percent(p.value)
	}
	return pricing.NewMoney(p.value)
}

func (p *Promotion) ID() uuid.UUID              { return p.id }
func (p *Promotion) BusinessID() uuid.UUID      { return p.businessID }
func (p *Promotion) Code() string               { return p.code }
func (p *Promotion) DiscountType() DiscountType { return p.discountType }
func (p *Promotion) Value() decimal.Decimal     { return p.value }
func (p *Promotion) ValidFrom() *time.Time      { return p.validFrom }
func (p *Promotion) ValidTo() *time.Time        { return p.validTo }
func (p *Promotion) Active() bool               { return p.active }
func (p *Promotion) CreatedAt() time.Time       { return p.createdAt }
