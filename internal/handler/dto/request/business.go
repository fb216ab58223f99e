package request

import (
	"time"

	"stayops/internal/domain/entitlement"
	"stayops/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type RegisterBusinessRequest struct {
	Name            string     `json:"name" binding:"required"`
	Category        string     `json:"category" binding:"required"`
	Plan            string     `json:"plan" binding:"required"`
	Trial           bool       `json:"trial"`
	SubscriptionEnd *time.Time `json:"subscription_end,omitempty"`
}

func (r RegisterBusinessRequest) ToParams() commands.RegisterBusinessParams {
	return commands.RegisterBusinessParams{
		Name:            r.Name,
		Category:        r.Category,
		Plan:            entitlement.Plan(r.Plan),
		Trial:           r.Trial,
		SubscriptionEnd: r.SubscriptionEnd,
	}
}

type SetBusinessStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetCommissionOverrideRequest struct {
	Rate *decimal.Decimal `json:"rate,omitempty"`
}
