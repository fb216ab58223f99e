package queries

import (
	"context"

	"stayops/internal/domain/settlement"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

type SettlementQueries interface {
	PlatformSummary(ctx context.Context, act Actor) (*SettlementSummaryView, error)
	BusinessRevenue(ctx context.Context, businessID uuid.UUID, act Actor) (*SettlementSummaryView, error)
}

type settlementQueriesImpl struct {
	bookingRepo BookingReader
	txRepo      TransactionReader
	pool        db.DBTX
}

func NewSettlementQueries(bookingRepo BookingReader, txRepo TransactionReader, pool db.DBTX) SettlementQueries {
	return &settlementQueriesImpl{
		bookingRepo: bookingRepo,
		txRepo:      txRepo,
		pool:        pool,
	}
}

// PlatformSummary aggregates GTV, commission and net owner revenue across
// the whole marketplace. Admin only.
func (q *settlementQueriesImpl) PlatformSummary(ctx context.Context, act Actor) (*SettlementSummaryView, error) {
	if !act.IsAdmin() {
		return nil, ErrForbidden
	}
	return q.summarize(ctx, nil)
}

// BusinessRevenue is the same aggregation scoped to one business, readable
// by that business's owner or staff.
func (q *settlementQueriesImpl) BusinessRevenue(ctx context.Context, businessID uuid.UUID, act Actor) (*SettlementSummaryView, error) {
	if !act.CanAccessBusiness(businessID) {
		return nil, ErrForbidden
	}
	return q.summarize(ctx, &businessID)
}

func (q *settlementQueriesImpl) summarize(ctx context.Context, businessID *uuid.UUID) (*SettlementSummaryView, error) {
	figures, err := q.bookingRepo.ListFigures(ctx, q.pool, businessID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	transactions, err := q.txRepo.List(ctx, q.pool, businessID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return summaryView(settlement.Summarize(figures, transactions)), nil
}
