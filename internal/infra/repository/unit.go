package repository

import (
	"context"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/unit"
	"stayops/internal/infra"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitRepository struct {
	pool db.DBTX
}

func NewUnitRepository(pool db.DBTX) *UnitRepository {
	return &UnitRepository{pool: pool}
}

const unitColumns = `
	id, business_id, name, base_price, capacity, amenities, status,
	available, check_in_policy, check_out_policy, cancellation_policy,
	created_at, updated_at`

func (r *UnitRepository) Create(ctx context.Context, tx db.DBTX, u *unit.Unit) (uuid.UUID, error) {
	const query = `
		INSERT INTO units (
			id, business_id, name, base_price, capacity, amenities, status,
			available, check_in_policy, check_out_policy, cancellation_policy,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		u.ID(), u.BusinessID(), u.Name(), u.BasePrice().Amount(), u.Capacity(),
		u.Amenities(), u.Status().String(), u.Available(),
		u.CheckInPolicy(), u.CheckOutPolicy(), u.CancellationPolicy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create unit", err)
	}
	return id, nil
}

func (r *UnitRepository) FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*unit.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`
	return r.scanUnit(ctx, q, query, id)
}

func (r *UnitRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*unit.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1 FOR UPDATE`
	return r.scanUnit(ctx, tx, query, id)
}

func (r *UnitRepository) Update(ctx context.Context, tx db.DBTX, u *unit.Unit) error {
	const query = `
		UPDATE units SET
			name = $2, base_price = $3, capacity = $4, amenities = $5,
			status = $6, available = $7, check_in_policy = $8,
			check_out_policy = $9, cancellation_policy = $10, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		u.ID(), u.Name(), u.BasePrice().Amount(), u.Capacity(), u.Amenities(),
		u.Status().String(), u.Available(),
		u.CheckInPolicy(), u.CheckOutPolicy(), u.CancellationPolicy(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update unit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("unit not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UnitRepository) CountByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) (int, error) {
	var count int
	err := q.QueryRow(ctx, `SELECT count(*) FROM units WHERE business_id = $1`, businessID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count units", err)
	}
	return count, nil
}

func (r *UnitRepository) ListByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) ([]*unit.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE business_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list units", err)
	}
	defer rows.Close()

	var result []*unit.Unit
	for rows.Next() {
		u, err := scanUnitRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan unit row", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate unit rows", err)
	}
	return result, nil
}

func (r *UnitRepository) scanUnit(ctx context.Context, q db.DBTX, query string, id uuid.UUID) (*unit.Unit, error) {
	u, err := scanUnitRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find unit", err)
	}
	return u, nil
}

func scanUnitRow(row rowScanner) (*unit.Unit, error) {
	var (
		id, businessID       uuid.UUID
		name                 string
		basePrice            decimal.Decimal
		capacity             int
		amenities            []string
		status               string
		available            bool
		checkInPolicy        string
		checkOutPolicy       string
		cancellationPolicy   string
		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&id, &businessID, &name, &basePrice, &capacity, &amenities, &status,
		&available, &checkInPolicy, &checkOutPolicy, &cancellationPolicy,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return unit.ReconstructUnit(
		id, businessID, name, pricing.NewMoney(basePrice), capacity, amenities,
		unit.Status(status), available,
		checkInPolicy, checkOutPolicy, cancellationPolicy,
		createdAt, updatedAt,
	), nil
}
