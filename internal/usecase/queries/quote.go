package queries

import (
	"context"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

// QuoteQueries prices a prospective stay without creating anything. The
// same calculator runs at booking creation, so a quote shown to a guest is
// the price they will be charged if the inputs do not change in between.
type QuoteQueries interface {
	Quote(ctx context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	unitRepo     UnitReader
	businessRepo BusinessReader
	ruleRepo     PricingRuleReader
	calculator   *pricing.Calculator
	pool         db.DBTX
}

func NewQuoteQueries(
	unitRepo UnitReader,
	businessRepo BusinessReader,
	ruleRepo PricingRuleReader,
	calculator *pricing.Calculator,
	pool db.DBTX,
) QuoteQueries {
	return &quoteQueriesImpl{
		unitRepo:     unitRepo,
		businessRepo: businessRepo,
		ruleRepo:     ruleRepo,
		calculator:   calculator,
		pool:         pool,
	}
}

func (q *quoteQueriesImpl) Quote(ctx context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (*QuoteView, error) {
	unitEntity, err := q.unitRepo.FindByID(ctx, q.pool, unitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnitNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	businessEntity, err := q.businessRepo.FindByID(ctx, q.pool, unitEntity.BusinessID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBusinessNotFound)
	}

	rules, err := q.ruleRepo.ListByBusiness(ctx, q.pool, unitEntity.BusinessID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var serviceFee *pricing.Money
	if fee := businessEntity.ServiceFee(); fee != nil {
		m := pricing.NewMoney(*fee)
		serviceFee = &m
	}

	quote, err := q.calculator.Quote(unitEntity.BasePrice(), checkIn, checkOut, rules, serviceFee)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	return &QuoteView{
		UnitID:     unitID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     quote.Nights,
		RoomTotal:  quote.RoomTotal.Amount(),
		ServiceFee: quote.ServiceFee.Amount(),
		GrandTotal: quote.GrandTotal.Amount(),
	}, nil
}
