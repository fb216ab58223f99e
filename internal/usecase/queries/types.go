package queries

import (
	"time"

	"stayops/internal/domain/audit"
	"stayops/internal/domain/booking"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/promotion"
	"stayops/internal/domain/settlement"
	"stayops/internal/domain/unit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type BookingView struct {
	ID                 uuid.UUID       `json:"id"`
	BusinessID         uuid.UUID       `json:"business_id"`
	UnitID             uuid.UUID       `json:"unit_id"`
	GuestID            *uuid.UUID      `json:"guest_id,omitempty"`
	WalkIn             bool            `json:"walk_in"`
	CheckIn            time.Time       `json:"check_in"`
	CheckOut           time.Time       `json:"check_out"`
	Nights             int             `json:"nights"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	Status             string          `json:"status"`
	VerifiedPayment    bool            `json:"verified_payment"`
	PaymentProofRef    *string         `json:"payment_proof_ref,omitempty"`
	AppliedPromotionID *uuid.UUID      `json:"applied_promotion_id,omitempty"`
	GuestNationality   *string         `json:"guest_nationality,omitempty"`
	DamageNote         *string         `json:"damage_note,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID       `json:"id"`
	UnitID     uuid.UUID       `json:"unit_id"`
	WalkIn     bool            `json:"walk_in"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   time.Time       `json:"check_out"`
	Nights     int             `json:"nights"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

type UnitView struct {
	ID                 uuid.UUID       `json:"id"`
	BusinessID         uuid.UUID       `json:"business_id"`
	Name               string          `json:"name"`
	BasePrice          decimal.Decimal `json:"base_price"`
	Capacity           int             `json:"capacity"`
	Amenities          []string        `json:"amenities"`
	Status             string          `json:"status"`
	Available          bool            `json:"available"`
	CheckInPolicy      string          `json:"check_in_policy,omitempty"`
	CheckOutPolicy     string          `json:"check_out_policy,omitempty"`
	CancellationPolicy string          `json:"cancellation_policy,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type PricingRuleView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	AdjustmentType string          `json:"adjustment_type"`
	Scope          string          `json:"scope"`
	Value          decimal.Decimal `json:"value"`
	Active         bool            `json:"active"`
	ValidFrom      *time.Time      `json:"valid_from,omitempty"`
	ValidTo        *time.Time      `json:"valid_to,omitempty"`
}

type PromotionView struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"`
	DiscountType string          `json:"discount_type"`
	Value        decimal.Decimal `json:"value"`
	Active       bool            `json:"active"`
	ValidFrom    *time.Time      `json:"valid_from,omitempty"`
	ValidTo      *time.Time      `json:"valid_to,omitempty"`
}

type QuoteView struct {
	UnitID     uuid.UUID       `json:"unit_id"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   time.Time       `json:"check_out"`
	Nights     int             `json:"nights"`
	RoomTotal  decimal.Decimal `json:"room_total"`
	ServiceFee decimal.Decimal `json:"service_fee"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

type EntitlementsView struct {
	BusinessID     uuid.UUID       `json:"business_id"`
	Plan           string          `json:"plan"`
	Modules        []string        `json:"modules"`
	UnitQuota      int             `json:"unit_quota"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

type SettlementSummaryView struct {
	GTV                decimal.Decimal `json:"gtv"`
	PlatformCommission decimal.Decimal `json:"platform_commission"`
	NetOwnerRevenue    decimal.Decimal `json:"net_owner_revenue"`
}

type AuditEntryView struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actor_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

func bookingView(b *booking.Booking) *BookingView {
	view := &BookingView{
		ID:                 b.ID(),
		BusinessID:         b.BusinessID(),
		UnitID:             b.UnitID(),
		GuestID:            b.GuestID(),
		WalkIn:             b.IsWalkIn(),
		CheckIn:            b.CheckInDate(),
		CheckOut:           b.CheckOutDate(),
		Nights:             b.Nights(),
		TotalPrice:         b.TotalPrice().Amount(),
		Status:             string(b.Status()),
		VerifiedPayment:    b.VerifiedPayment(),
		PaymentProofRef:    b.PaymentProofRef(),
		AppliedPromotionID: b.AppliedPromotionID(),
		DamageNote:         b.DamageNote(),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}
	if identity := b.GuestIdentity(); identity != nil {
		nationality := identity.Nationality
		view.GuestNationality = &nationality
	}
	return view
}

func bookingListItem(b *booking.Booking) *BookingListItem {
	return &BookingListItem{
		ID:         b.ID(),
		UnitID:     b.UnitID(),
		WalkIn:     b.IsWalkIn(),
		CheckIn:    b.CheckInDate(),
		CheckOut:   b.CheckOutDate(),
		Nights:     b.Nights(),
		TotalPrice: b.TotalPrice().Amount(),
		Status:     string(b.Status()),
		CreatedAt:  b.CreatedAt(),
	}
}

func unitView(u *unit.Unit) *UnitView {
	return &UnitView{
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

func pricingRuleView(r *pricing.Rule) *PricingRuleView {
	return &PricingRuleView{
		ID:             r.ID(),
		Name:           r.Name(),
		AdjustmentType: string(r.AdjustmentType()),
		Scope:          string(r.Scope()),
		Value:          r.Value(),
		Active:         r.Active(),
		ValidFrom:      r.ValidFrom(),
		ValidTo:        r.ValidTo(),
	}
}

func promotionView(p *promotion.Promotion) *PromotionView {
	return &PromotionView{
		ID:           p.ID(),
		Code:         p.Code(),
		DiscountType: string(p.DiscountType()),
		Value:        p.Value(),
		Active:       p.Active(),
		ValidFrom:    p.ValidFrom(),
		ValidTo:      p.ValidTo(),
	}
}

func summaryView(s settlement.Summary) *SettlementSummaryView {
	return &SettlementSummaryView{
		GTV:                s.GTV.Amount(),
		PlatformCommission: s.PlatformCommission.Amount(),
		NetOwnerRevenue:    s.NetOwnerRevenue.Amount(),
	}
}

func auditEntryView(e audit.Entry) *AuditEntryView {
	return &AuditEntryView{
		ID:        e.ID,
		ActorID:   e.ActorID,
		Action:    e.Action,
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt,
	}
}
