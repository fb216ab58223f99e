package request

import (
	"strings"
	"time"

	"stayops/internal/domain/booking"
	"stayops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	UnitID        uuid.UUID        `json:"unit_id" binding:"required"`
	CheckIn       time.Time        `json:"check_in" binding:"required"`
	CheckOut      time.Time        `json:"check_out" binding:"required"`
	WalkIn        bool             `json:"walk_in"`
	PriceOverride *decimal.Decimal `json:"price_override,omitempty"`
}

func (r CreateBookingRequest) ToParams(guestID uuid.UUID) commands.CreateBookingParams {
	params := commands.CreateBookingParams{
		UnitID:        r.UnitID,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		WalkIn:        r.WalkIn,
		PriceOverride: r.PriceOverride,
	}
	if !r.WalkIn {
		params.GuestID = &guestID
	}
	return params
}

type CheckInRequest struct {
	IdentityNumber string `json:"identity_number" binding:"required"`
	Nationality    string `json:"nationality" binding:"required"`
	Phone          string `json:"phone"`
}

func (r CheckInRequest) ToIdentity() booking.GuestIdentity {
	return booking.GuestIdentity{
		IdentityNumber: strings.TrimSpace(r.IdentityNumber),
		Nationality:    strings.TrimSpace(r.Nationality),
		Phone:          strings.TrimSpace(r.Phone),
	}
}

type CheckOutRequest struct {
	DamageNote *string `json:"damage_note,omitempty"`
}

type RescheduleRequest struct {
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
	AuthRef  string    `json:"auth_ref" binding:"required"`
}

func (r RescheduleRequest) ToParams() commands.RescheduleParams {
	return commands.RescheduleParams{
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		AuthRef:  strings.TrimSpace(r.AuthRef),
	}
}

type SetPaymentRequest struct {
	Verified bool    `json:"verified"`
	ProofRef *string `json:"proof_ref,omitempty"`
}

type ApplyPromotionRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r ApplyPromotionRequest) GetCode() string {
	return strings.TrimSpace(r.Code)
}
