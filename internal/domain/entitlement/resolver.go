package entitlement

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Module is a functional feature a tenant dashboard may expose.
type Module string

const (
	ModuleBookings     Module = "bookings"
	ModuleUnits        Module = "units"
	ModulePricing      Module = "pricing"
	ModulePromotions   Module = "promotions"
	ModuleStaff        Module = "staff"
	ModuleAnalytics    Module = "analytics"
	ModuleHousekeeping Module = "housekeeping"
	ModuleChannels     Module = "channels"
)

// Entitlements is the resolved answer for one business: which modules its
// category enables and what its plan allows.
type Entitlements struct {
	Modules        []Module
	UnitQuota      int
	CommissionRate decimal.Decimal
}

func (e Entitlements) HasModule(m Module) bool {
	for _, enabled := range e.Modules {
		if enabled == m {
			return true
		}
	}
	return false
}

// defaultCategoryModules maps business categories to the modules their
// dashboards expose. The platform admin can replace this mapping wholesale;
// the resolver itself stays a pure lookup.
var defaultCategoryModules = map[string][]Module{
	"hotel":      {ModuleBookings, ModuleUnits, ModulePricing, ModulePromotions, ModuleStaff, ModuleAnalytics, ModuleHousekeeping},
	"villa":      {ModuleBookings, ModuleUnits, ModulePricing, ModulePromotions, ModuleAnalytics},
	"guesthouse": {ModuleBookings, ModuleUnits, ModulePricing, ModuleHousekeeping},
	"homestay":   {ModuleBookings, ModuleUnits, ModulePricing},
	"hostel":     {ModuleBookings, ModuleUnits, ModulePricing, ModuleStaff, ModuleHousekeeping},
}

type Resolver struct {
	categoryModules map[string][]Module
}

func NewResolver(categoryModules map[string][]Module) *Resolver {
	if categoryModules == nil {
		categoryModules = defaultCategoryModules
	}
	return &Resolver{categoryModules: categoryModules}
}

func NewDefaultResolver() *Resolver {
	return NewResolver(nil)
}

// Resolve answers "what may business B use" from its category and plan.
// Unknown categories yield an empty module set and unknown plans yield the
// Basic limits; neither is an error.
func (r *Resolver) Resolve(category string, plan Plan, commissionOverride *decimal.Decimal) Entitlements {
	limits := LimitsFor(plan)

	rate := limits.CommissionRate
	if commissionOverride != nil {
		rate = *commissionOverride
	}

	modules := r.categoryModules[category]
	out := make([]Module, len(modules))
	copy(out, modules)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return Entitlements{
		Modules:        out,
		UnitQuota:      limits.UnitQuota,
		CommissionRate: rate,
	}
}

// Categories lists the configured categories, mainly for admin tooling.
func (r *Resolver) Categories() []string {
	cats := make([]string, 0, len(r.categoryModules))
	for c := range r.categoryModules {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
