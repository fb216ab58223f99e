package response

import (
	"time"

	"stayops/internal/domain/booking"
	"stayops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID                 uuid.UUID       `json:"id"`
	BusinessID         uuid.UUID       `json:"businessId"`
	UnitID             uuid.UUID       `json:"unitId"`
	GuestID            *uuid.UUID      `json:"guestId,omitempty"`
	WalkIn             bool            `json:"walkIn"`
	CheckIn            time.Time       `json:"checkIn"`
	CheckOut           time.Time       `json:"checkOut"`
	Nights             int             `json:"nights"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	Status             string          `json:"status"`
	VerifiedPayment    bool            `json:"verifiedPayment"`
	AppliedPromotionID *uuid.UUID      `json:"appliedPromotionId,omitempty"`
	DamageNote         *string         `json:"damageNote,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID       `json:"id"`
	UnitID     uuid.UUID       `json:"unitId"`
	WalkIn     bool            `json:"walkIn"`
	CheckIn    time.Time       `json:"checkIn"`
	CheckOut   time.Time       `json:"checkOut"`
	Nights     int             `json:"nights"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type AuditEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actorId"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromBooking maps a freshly mutated aggregate; command handlers return the
// written state without a second read.
func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
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
		AppliedPromotionID: b.AppliedPromotionID(),
		DamageNote:         b.DamageNote(),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	resp := make([]*BookingListResponse, 0, len(items))
	_ = copier.Copy(&resp, &items)
	return resp
}

func FromAuditEntries(entries []*queries.AuditEntryView) []*AuditEntryResponse {
	resp := make([]*AuditEntryResponse, 0, len(entries))
	_ = copier.Copy(&resp, &entries)
	return resp
}
