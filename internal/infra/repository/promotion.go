package repository

import (
	"context"
	"time"

	"stayops/internal/domain/promotion"
	"stayops/internal/infra"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromotionRepository struct {
	pool db.DBTX
}

func NewPromotionRepository(pool db.DBTX) *PromotionRepository {
	return &PromotionRepository{pool: pool}
}

const promotionColumns = `
	id, business_id, code, discount_type, value, valid_from, valid_to,
	active, created_at`

func (r *PromotionRepository) Create(ctx context.Context, tx db.DBTX, p *promotion.Promotion) (uuid.UUID, error) {
	const query = `
		INSERT INTO promotions (
			id, business_id, code, discount_type, value, valid_from, valid_to,
			active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		p.ID(), p.BusinessID(), p.Code(), string(p.DiscountType()), p.Value(),
		p.ValidFrom(), p.ValidTo(), p.Active(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create promotion", err)
	}
	return id, nil
}

// FindByCode resolves a code within one business; codes are only unique per
// business, never globally.
func (r *PromotionRepository) FindByCode(ctx context.Context, q db.DBTX, businessID uuid.UUID, code string) (*promotion.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE business_id = $1 AND code = $2`

	p, err := scanPromotionRow(q.QueryRow(ctx, query, businessID, code))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by code", err)
	}
	return p, nil
}

func (r *PromotionRepository) FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*promotion.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`

	p, err := scanPromotionRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion", err)
	}
	return p, nil
}

func (r *PromotionRepository) ListByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) ([]*promotion.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE business_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	defer rows.Close()

	var result []*promotion.Promotion
	for rows.Next() {
		p, err := scanPromotionRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan promotion row", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate promotion rows", err)
	}
	return result, nil
}

func (r *PromotionRepository) SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := tx.Exec(ctx, `UPDATE promotions SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to toggle promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanPromotionRow(row rowScanner) (*promotion.Promotion, error) {
	var (
		id, businessID     uuid.UUID
		code, discountType string
		value              decimal.Decimal
		validFrom, validTo *time.Time
		active             bool
		createdAt          time.Time
	)

	err := row.Scan(&id, &businessID, &code, &discountType, &value, &validFrom, &validTo, &active, &createdAt)
	if err != nil {
		return nil, err
	}

	return promotion.ReconstructPromotion(
		id, businessID, code, promotion.DiscountType(discountType), value,
		validFrom, validTo, active, createdAt,
	), nil
}
