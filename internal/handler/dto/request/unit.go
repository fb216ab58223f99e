package request

import (
	"stayops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateUnitRequest struct {
	Name      string          `json:"name" binding:"required"`
	BasePrice decimal.Decimal `json:"base_price" binding:"required"`
	Capacity  int             `json:"capacity" binding:"required,min=1"`
	Amenities []string        `json:"amenities"`
}

func (r CreateUnitRequest) ToParams(businessID uuid.UUID) commands.CreateUnitParams {
	return commands.CreateUnitParams{
		BusinessID: businessID,
		Name:       r.Name,
		BasePrice:  r.BasePrice,
		Capacity:   r.Capacity,
		Amenities:  r.Amenities,
	}
}

type UpdateUnitRequest struct {
	Name      string          `json:"name" binding:"required"`
	BasePrice decimal.Decimal `json:"base_price" binding:"required"`
	Capacity  int             `json:"capacity" binding:"required,min=1"`
	Amenities []string        `json:"amenities"`
}

func (r UpdateUnitRequest) ToParams() commands.UpdateUnitParams {
	return commands.UpdateUnitParams{
		Name:      r.Name,
		BasePrice: r.BasePrice,
		Capacity:  r.Capacity,
		Amenities: r.Amenities,
	}
}

type SetUnitStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetUnitAvailabilityRequest struct {
	Available bool `json:"available"`
}
