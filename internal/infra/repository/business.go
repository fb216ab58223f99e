package repository

import (
	"context"
	"time"

	"stayops/internal/domain/business"
	"stayops/internal/domain/entitlement"
	"stayops/internal/infra"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BusinessRepository struct {
	pool db.DBTX
}

func NewBusinessRepository(pool db.DBTX) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

const businessColumns = `
	id, name, category, plan, subscription_end, trial, status,
	commission_override, service_fee, penalty_count, featured,
	created_at, updated_at`

func (r *BusinessRepository) Create(ctx context.Context, tx db.DBTX, b *business.Business) (uuid.UUID, error) {
	const query = `
		INSERT INTO businesses (
			id, name, category, plan, subscription_end, trial, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(), b.Name(), b.Category(), b.Plan().String(),
		b.SubscriptionEnd(), b.Trial(), b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create business", err)
	}
	return id, nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*business.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	b, err := scanBusinessRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find business", err)
	}
	return b, nil
}

func (r *BusinessRepository) Update(ctx context.Context, tx db.DBTX, b *business.Business) error {
	const query = `
		UPDATE businesses SET
			status = $2, commission_override = $3, service_fee = $4,
			penalty_count = $5, featured = $6, plan = $7,
			subscription_end = $8, trial = $9, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		b.ID(), b.Status().String(), b.CommissionOverride(), b.ServiceFee(),
		b.PenaltyCount(), b.Featured(), b.Plan().String(),
		b.SubscriptionEnd(), b.Trial(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update business", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("business not found", nil, infra.KindNotFound)
	}
	return nil
}

// ListExpiredActive returns active, non-trial businesses whose subscription
// lapsed before now. Used by the nightly sweep.
func (r *BusinessRepository) ListExpiredActive(ctx context.Context, q db.DBTX, now time.Time) ([]*business.Business, error) {
	query := `SELECT ` + businessColumns + `
		FROM businesses
		WHERE status = 'active' AND subscription_end IS NOT NULL AND subscription_end < $1`

	rows, err := q.Query(ctx, query, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired businesses", err)
	}
	defer rows.Close()

	var result []*business.Business
	for rows.Next() {
		b, err := scanBusinessRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan business row", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate business rows", err)
	}
	return result, nil
}

func scanBusinessRow(row rowScanner) (*business.Business, error) {
	var (
		id                             uuid.UUID
		name, category, plan, status   string
		subscriptionEnd                *time.Time
		trial, featured                bool
		commissionOverride, serviceFee *decimal.Decimal
		penaltyCount                   int
		createdAt, updatedAt           time.Time
	)

	err := row.Scan(
		&id, &name, &category, &plan, &subscriptionEnd, &trial, &status,
		&commissionOverride, &serviceFee, &penaltyCount, &featured,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return business.ReconstructBusiness(
		id, name, category, entitlement.Plan(plan), subscriptionEnd, trial,
		business.Status(status), commissionOverride, serviceFee,
		penaltyCount, featured, createdAt, updatedAt,
	), nil
}
