package response

import (
	"time"

	"stayops/internal/domain/unit"
	"stayops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type UnitResponse struct {
	ID                 uuid.UUID       `json:"id"`
	BusinessID         uuid.UUID       `json:"businessId"`
	Name               string          `json:"name"`
	BasePrice          decimal.Decimal `json:"basePrice"`
	Capacity           int             `json:"capacity"`
	Amenities          []string        `json:"amenities"`
	Status             string          `json:"status"`
	Available          bool            `json:"available"`
	CheckInPolicy      string          `json:"checkInPolicy,omitempty"`
	CheckOutPolicy     string          `json:"checkOutPolicy,omitempty"`
	CancellationPolicy string          `json:"cancellationPolicy,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func FromUnit(u *unit.Unit) *UnitResponse {
	return &UnitResponse{
		ID:                 u.ID(),
		BusinessID:         u.BusinessID(),
		Name:               u.Name(),
		BasePrice:          u.BasePrice().Amount(),
		Capacity:           u.Capacity(),
		Amenities:          u.Amenities(),
		Status:             string(u.Status()),
		Available:          u.Available(),
		CheckInPolicy:      u.CheckInPolicy(),
		CheckOutPolicy:     u.CheckOutPolicy(),
		CancellationPolicy: u.CancellationPolicy(),
		CreatedAt:          u.CreatedAt(),
		UpdatedAt:          u.UpdatedAt(),
	}
}

func FromUnitView(view *queries.UnitView) *UnitResponse {
	var resp UnitResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromUnitViews(views []*queries.UnitView) []*UnitResponse {
	resp := make([]*UnitResponse, 0, len(views))
	_ = copier.Copy(&resp, &views)
	return resp
}
