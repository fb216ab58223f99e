package business

import (
	"errors"
	"time"

	"stayops/internal/domain/entitlement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus     = errors.New("invalid business status")
	ErrInvalidPlan       = errors.New("invalid subscription plan")
	ErrEmptyName         = errors.New("business name cannot be empty")
	ErrBusinessNotActive = errors.New("business is not active")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended, StatusRejected:
		return true
	default:
		return false
	}
}

// Business is one hospitality tenant on the platform. Created pending at
// registration; only admin actions move it to active, suspended or rejected.
type Business struct {
	id                 uuid.UUID
	name               string
	category           string
	plan               entitlement.Plan
	subscriptionEnd    *time.Time
	trial              bool
	status             Status
	commissionOverride *decimal.Decimal
	serviceFee         *decimal.Decimal
	penaltyCount       int
	featured           bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewBusiness(name, category string, plan entitlement.Plan, trial bool, subscriptionEnd *time.Time) (*Business, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !plan.IsValid() {
		return nil, ErrInvalidPlan
	}
	return &Business{
		id:              uuid.New(),
		name:            name,
		category:        category,
		plan:            plan,
		subscriptionEnd: subscriptionEnd,
		trial:           trial,
		status:          StatusPending,
	}, nil
}

func ReconstructBusiness(
	id uuid.UUID,
	name, category string,
	plan entitlement.Plan,
	subscriptionEnd *time.Time,
	trial bool,
	status Status,
	commissionOverride, serviceFee *decimal.Decimal,
	penaltyCount int,
	featured bool,
	createdAt, updatedAt time.Time,
) *Business {
	return &Business{
		id:                 id,
		name:               name,
		category:           category,
		plan:               plan,
		subscriptionEnd:    subscriptionEnd,
		trial:              trial,
		status:             status,
		commissionOverride: commissionOverride,
		serviceFee:         serviceFee,
		penaltyCount:       penaltyCount,
		featured:           featured,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (b *Business) SetStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	b.status = s
	return nil
}

func (b *Business) SetCommissionOverride(rate *decimal.Decimal) {
	b.commissionOverride = rate
}

func (b *Business) AddPenalty() {
	b.penaltyCount++
}

func (b *Business) SetFeatured(featured bool) {
	b.featured = featured
}

// Lapse downgrades a business whose subscription has run out. The plan
// drops to Basic and the expiry is cleared so the sweep does not pick the
// business up again.
func (b *Business) Lapse() {
	b.plan = entitlement.PlanBasic
	b.subscriptionEnd = nil
	b.trial = false
}

func (b *Business) IsActive() bool {
	return b.status == StatusActive
}

// SubscriptionExpired reports whether the paid plan has lapsed. Businesses
// without an expiry date never lapse.
func (b *Business) SubscriptionExpired(now time.Time) bool {
	return b.subscriptionEnd != nil && now.After(*b.subscriptionEnd)
}

// EffectivePlan is the plan entitlements resolve against: a lapsed
// subscription falls back to Basic until renewed.
func (b *Business) EffectivePlan(now time.Time) entitlement.Plan {
	if b.SubscriptionExpired(now) {
		return entitlement.PlanBasic
	}
	return b.plan
}

func (b *Business) ID() uuid.UUID                        { return b.id }
func (b *Business) Name() string                         { return b.name }
func (b *Business) Category() string                     { return b.category }
func (b *Business) Plan() entitlement.Plan               { return b.plan }
func (b *Business) SubscriptionEnd() *time.Time          { return b.subscriptionEnd }
func (b *Business) Trial() bool                          { return b.trial }
func (b *Business) Status() Status                       { return b.status }
func (b *Business) CommissionOverride() *decimal.Decimal { return b.commissionOverride }
func (b *Business) ServiceFee() *decimal.Decimal         { return b.serviceFee }
func (b *Business) PenaltyCount() int                    { return b.penaltyCount }
func (b *Business) Featured() bool                       { return b.featured }
func (b *Business) CreatedAt() time.Time                 { return b.createdAt }
func (b *Business) UpdatedAt() time.Time                 { return b.updatedAt }
