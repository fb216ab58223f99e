package repository

import (
	"context"

	"stayops/internal/domain/audit"
	"stayops/internal/infra"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
)

type AuditRepository struct {
	pool db.DBTX
}

func NewAuditRepository(pool db.DBTX) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Append(ctx context.Context, tx db.DBTX, e audit.Entry) error {
	const query = `
		INSERT INTO audit_entries (id, entity_kind, entity_id, actor_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query, e.ID, string(e.EntityKind), e.EntityID, e.ActorID, e.Action, e.Detail, e.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit entry", err)
	}
	return nil
}

func (r *AuditRepository) ListByEntity(ctx context.Context, q db.DBTX, kind audit.EntityKind, entityID uuid.UUID) ([]audit.Entry, error) {
	const query = `
		SELECT id, entity_kind, entity_id, actor_id, action, detail, created_at
		FROM audit_entries
		WHERE entity_kind = $1 AND entity_id = $2
		ORDER BY created_at`

	rows, err := q.Query(ctx, query, string(kind), entityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit entries", err)
	}
	defer rows.Close()

	var result []audit.Entry
	for rows.Next() {
		var e audit.Entry
		var entityKind string
		if err := rows.Scan(&e.ID, &entityKind, &e.EntityID, &e.ActorID, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit entry", err)
		}
		e.EntityKind = audit.EntityKind(entityKind)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate audit entries", err)
	}
	return result, nil
}
