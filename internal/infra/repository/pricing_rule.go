package repository

import (
	"context"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/infra"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingRuleRepository struct {
	pool db.DBTX
}

func NewPricingRuleRepository(pool db.DBTX) *PricingRuleRepository {
	return &PricingRuleRepository{pool: pool}
}

const pricingRuleColumns = `
	id, business_id, name, adjustment_type, scope, value, active,
	valid_from, valid_to, created_at`

func (r *PricingRuleRepository) Create(ctx context.Context, tx db.DBTX, rule *pricing.Rule) (uuid.UUID, error) {
	const query = `
		INSERT INTO pricing_rules (
			id, business_id, name, adjustment_type, scope, value, active,
			valid_from, valid_to, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rule.ID(), rule.BusinessID(), rule.Name(), string(rule.AdjustmentType()),
		string(rule.Scope()), rule.Value(), rule.Active(),
		rule.ValidFrom(), rule.ValidTo(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pricing rule", err)
	}
	return id, nil
}

// ListByBusiness preserves insertion order; the calculator applies rules in
// exactly this order.
func (r *PricingRuleRepository) ListByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) ([]*pricing.Rule, error) {
	query := `SELECT ` + pricingRuleColumns + ` FROM pricing_rules WHERE business_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var result []*pricing.Rule
	for rows.Next() {
		rule, err := scanPricingRuleRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule row", err)
		}
		result = append(result, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing rule rows", err)
	}
	return result, nil
}

func (r *PricingRuleRepository) SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := tx.Exec(ctx, `UPDATE pricing_rules SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to toggle pricing rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanPricingRuleRow(row rowScanner) (*pricing.Rule, error) {
	var (
		id, businessID              uuid.UUID
		name, adjustmentType, scope string
		value                       decimal.Decimal
		active                      bool
		validFrom, validTo          *time.Time
		createdAt                   time.Time
	)

	err := row.Scan(&id, &businessID, &name, &adjustmentType, &scope, &value, &active, &validFrom, &validTo, &createdAt)
	if err != nil {
		return nil, err
	}

	return pricing.ReconstructRule(
		id, businessID, name, pricing.AdjustmentType(adjustmentType),
		pricing.RuleScope(scope), value, active, validFrom, validTo, createdAt,
	), nil
}
