//go:build unit || e2e

package builder

import (
	"time"

	"stayops/internal/domain/pricing"
	domunit "stayops/internal/domain/unit"

	"github.com/google/uuid"
)

type UnitBuilder struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	BasePrice  int64
	Capacity   int
	Amenities  []string
	Status     domunit.Status
	Available  bool
	CreatedAt  time.Time
}

func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Name:       "Deluxe Ocean View",
		BasePrice:  500_000,
		Capacity:   2,
		Amenities:  []string{"wifi", "ac"},
		Status:     domunit.StatusReady,
		Available:  true,
		CreatedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UnitBuilder) With(mutate func(*UnitBuilder)) *UnitBuilder {
	mutate(u)
	return u
}

func (u *UnitBuilder) BuildDomain() *domunit.Unit {
	return domunit.ReconstructUnit(
		u.ID, u.BusinessID,
		u.Name,
		pricing.NewMoneyFromInt(u.BasePrice),
		u.Capacity,
		u.Amenities,
		u.Status,
		u.Available,
		"14:00", "12:00", "free cancellation up to 48h",
		u.CreatedAt, u.CreatedAt,
	)
}
