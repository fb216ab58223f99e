package queries

import (
	"context"

	"stayops/internal/domain/audit"
	"stayops/internal/domain/booking"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, act Actor) (*BookingView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, act Actor) ([]*BookingListItem, error)
	AuditLog(ctx context.Context, bookingID uuid.UUID, act Actor) ([]*AuditEntryView, error)
}

type bookingQueriesImpl struct {
	bookingRepo BookingReader
	auditRepo   AuditReader
	pool        db.DBTX
}

func NewBookingQueries(bookingRepo BookingReader, auditRepo AuditReader, pool db.DBTX) BookingQueries {
	return &bookingQueriesImpl{
		bookingRepo: bookingRepo,
		auditRepo:   auditRepo,
		pool:        pool,
	}
}

// GetByID returns the full booking view. Business staff see any booking of
// their business; a guest sees only their own.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, act Actor) (*BookingView, error) {
	b, err := q.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !act.CanAccessBusiness(b.BusinessID()) && !isOwnGuest(b.GuestID(), act.ID) {
		return nil, ErrForbidden
	}
	return bookingView(b), nil
}

func (q *bookingQueriesImpl) ListByBusiness(ctx context.Context, businessID uuid.UUID, act Actor) ([]*BookingListItem, error) {
	if !act.CanAccessBusiness(businessID) {
		return nil, ErrForbidden
	}

	bookings, err := q.bookingRepo.ListByBusiness(ctx, q.pool, businessID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := make([]*BookingListItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, bookingListItem(b))
	}
	return items, nil
}

func (q *bookingQueriesImpl) AuditLog(ctx context.Context, bookingID uuid.UUID, act Actor) ([]*AuditEntryView, error) {
	b, err := q.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !act.CanAccessBusiness(b.BusinessID()) {
		return nil, ErrForbidden
	}

	entries, err := q.auditRepo.ListByEntity(ctx, q.pool, audit.EntityBooking, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*AuditEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, auditEntryView(e))
	}
	return views, nil
}

func (q *bookingQueriesImpl) findBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := q.bookingRepo.FindByID(ctx, q.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

func isOwnGuest(guestID *uuid.UUID, actorID uuid.UUID) bool {
	return guestID != nil && *guestID == actorID
}
