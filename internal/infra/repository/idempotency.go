package repository

import (
	"context"
	"time"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/usecase/commands"

	"github.com/google/uuid"
)

type IdempotencyRepository struct {
	pool db.DBTX
}

func NewIdempotencyRepository(pool db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{pool: pool}
}

// TryInsert claims the key for this actor. Losing the race is not an
// error; Get decides what to do with the surviving row.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, actorID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	const query = `
		INSERT INTO idempotency_keys (key, actor_id, endpoint, request_hash, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'processing', $5, now(), now())
		ON CONFLICT (key, actor_id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, key, actorID, endpoint, requestHash, expiresAt); err != nil {
		return infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, actorID uuid.UUID) (*commands.IdempotencyRecord, error) {
	const query = `
		SELECT key, actor_id, status, request_hash, result_booking_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND actor_id = $2 AND expires_at > now()`

	var rec commands.IdempotencyRecord
	err := r.pool.QueryRow(ctx, query, key, actorID).Scan(
		&rec.Key, &rec.ActorID, &rec.Status, &rec.RequestHash,
		&rec.ResultBookingID, &rec.ExpiresAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx db.DBTX, key, actorID, resultBookingID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', result_booking_id = $3, updated_at = now()
		WHERE key = $1 AND actor_id = $2`

	if _, err := tx.Exec(ctx, query, key, actorID, resultBookingID); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM idempotency_keys WHERE expires_at <= now()`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
