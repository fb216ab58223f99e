//go:build unit || e2e

package builder

import (
	"time"

	dombusiness "stayops/internal/domain/business"
	"stayops/internal/domain/entitlement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BusinessBuilder struct {
	ID                 uuid.UUID
	Name               string
	Category           string
	Plan               entitlement.Plan
	SubscriptionEnd    *time.Time
	Trial              bool
	Status             dombusiness.Status
	CommissionOverride *decimal.Decimal
	ServiceFee         *decimal.Decimal
	CreatedAt          time.Time
}

func NewBusinessBuilder() *BusinessBuilder {
	return &BusinessBuilder{
		ID:        uuid.New(),
		Name:      "Sunrise Villas",
		Category:  "hotel",
		Plan:      entitlement.PlanPro,
		Status:    dombusiness.StatusActive,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *BusinessBuilder) With(mutate func(*BusinessBuilder)) *BusinessBuilder {
	mutate(b)
	return b
}

func (b *BusinessBuilder) BuildDomain() *dombusiness.Business {
	return dombusiness.ReconstructBusiness(
		b.ID,
		b.Name, b.Category,
		b.Plan,
		b.SubscriptionEnd,
		b.Trial,
		b.Status,
		b.CommissionOverride, b.ServiceFee,
		0,
		false,
		b.CreatedAt, b.CreatedAt,
	)
}
