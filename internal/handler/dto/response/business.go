package response

import (
	"time"

	"stayops/internal/domain/business"
	"stayops/internal/domain/settlement"
	"stayops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BusinessResponse struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Category           string           `json:"category"`
	Plan               string           `json:"plan"`
	Status             string           `json:"status"`
	Trial              bool             `json:"trial"`
	SubscriptionEnd    *time.Time       `json:"subscriptionEnd,omitempty"`
	CommissionOverride *decimal.Decimal `json:"commissionOverride,omitempty"`
	Featured           bool             `json:"featured"`
}

type EntitlementsResponse struct {
	BusinessID     uuid.UUID       `json:"businessId"`
	Plan           string          `json:"plan"`
	Modules        []string        `json:"modules"`
	UnitQuota      int             `json:"unitQuota"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
}

type SettlementSummaryResponse struct {
	GTV                decimal.Decimal `json:"gtv"`
	PlatformCommission decimal.Decimal `json:"platformCommission"`
	NetOwnerRevenue    decimal.Decimal `json:"netOwnerRevenue"`
}

type TransactionResponse struct {
	ID         uuid.UUID       `json:"id"`
	BusinessID uuid.UUID       `json:"businessId"`
	BookingID  *uuid.UUID      `json:"bookingId,omitempty"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func FromBusiness(b *business.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:                 b.ID(),
		Name:               b.Name(),
		Category:           b.Category(),
		Plan:               b.Plan().String(),
		Status:             b.Status().String(),
		Trial:              b.Trial(),
		SubscriptionEnd:    b.SubscriptionEnd(),
		CommissionOverride: b.CommissionOverride(),
		Featured:           b.Featured(),
	}
}

func FromEntitlementsView(view *queries.EntitlementsView) *EntitlementsResponse {
	var resp EntitlementsResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromSummaryView(view *queries.SettlementSummaryView) *SettlementSummaryResponse {
	var resp SettlementSummaryResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromTransaction(t *settlement.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:         t.ID(),
		BusinessID: t.BusinessID(),
		BookingID:  t.BookingID(),
		Type:       string(t.Type()),
		Amount:     t.Amount().Amount(),
		Status:     string(t.Status()),
		CreatedAt:  t.CreatedAt(),
	}
}
