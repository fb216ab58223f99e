package repository

import (
	"context"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/settlement"
	"stayops/internal/infra"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	pool db.DBTX
}

func NewTransactionRepository(pool db.DBTX) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `
	id, business_id, booking_id, type, amount, status, created_at`

// Create appends one immutable ledger entry. The partial unique index on
// (booking_id) WHERE type = 'commission' backs settlement idempotency; a
// replayed completion surfaces as KindDuplicateKey.
func (r *TransactionRepository) Create(ctx context.Context, tx db.DBTX, t *settlement.Transaction) (uuid.UUID, error) {
	const query = `
		INSERT INTO transactions (
			id, business_id, booking_id, type, amount, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		t.ID(), t.BusinessID(), t.BookingID(), string(t.Type()),
		t.Amount().Amount(), string(t.Status()), t.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create transaction", err)
	}
	return id, nil
}

// FindCommissionByBookingID returns the commission entry already recorded
// for a booking, if any.
func (r *TransactionRepository) FindCommissionByBookingID(ctx context.Context, q db.DBTX, bookingID uuid.UUID) (*settlement.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE booking_id = $1 AND type = 'commission'`

	t, err := scanTransactionRow(q.QueryRow(ctx, query, bookingID))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("commission transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find commission transaction", err)
	}
	return t, nil
}

// List returns ledger entries, optionally scoped to one business.
func (r *TransactionRepository) List(ctx context.Context, q db.DBTX, businessID *uuid.UUID) ([]*settlement.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions`
	args := []any{}
	if businessID != nil {
		query += ` WHERE business_id = $1`
		args = append(args, *businessID)
	}
	query += ` ORDER BY created_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	defer rows.Close()

	var result []*settlement.Transaction
	for rows.Next() {
		t, err := scanTransactionRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction row", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transaction rows", err)
	}
	return result, nil
}

func scanTransactionRow(row rowScanner) (*settlement.Transaction, error) {
	var (
		id, businessID uuid.UUID
		bookingID      *uuid.UUID
		txType, status string
		amount         decimal.Decimal
		createdAt      time.Time
	)

	err := row.Scan(&id, &businessID, &bookingID, &txType, &amount, &status, &createdAt)
	if err != nil {
		return nil, err
	}

	return settlement.ReconstructTransaction(
		id, businessID, bookingID, settlement.TransactionType(txType),
		pricing.NewMoney(amount), settlement.TransactionStatus(status), createdAt,
	), nil
}
