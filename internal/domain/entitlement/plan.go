package entitlement

import "github.com/shopspring/decimal"

// Plan is a tenant subscription tier.
type Plan string

const (
	PlanBasic   Plan = "basic"
	PlanPro     Plan = "pro"
	PlanPremium Plan = "premium"
)

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	switch p {
	case PlanBasic, PlanPro, PlanPremium:
		return true
	default:
		return false
	}
}

// PlanLimits holds the per-plan quota and commission defaults.
// UnitQuota 0 means unlimited; enforcement must treat 0 as no limit.
type PlanLimits struct {
	UnitQuota      int
	CommissionRate decimal.Decimal // percent of booking value
}

// planDefaults is the authoritative limits table for each tier.
var planDefaults = map[Plan]PlanLimits{
	PlanBasic: {
		UnitQuota:      10,
		CommissionRate: decimal.NewFromInt(15),
	},
	PlanPro: {
		UnitQuota:      50,
		CommissionRate: decimal.NewFromInt(10),
	},
	PlanPremium: {
		UnitQuota:      0,
		CommissionRate: decimal.NewFromInt(5),
	},
}

// LimitsFor returns the limits for a plan, falling back to Basic for
// unknown tiers so a misconfigured tenant never gains extra quota.
func LimitsFor(plan Plan) PlanLimits {
	if limits, ok := planDefaults[plan]; ok {
		return limits
	}
	return planDefaults[PlanBasic]
}

// WithinQuota reports whether currentCount more-or-equal units may still be
// created under the quota. A quota of 0 is unlimited.
func WithinQuota(quota, currentCount int) bool {
	if quota == 0 {
		return true
	}
	return currentCount < quota
}
