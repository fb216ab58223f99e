package settlement

import (
	"errors"
	"time"

	"stayops/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount cannot be negative")
)

type TransactionType string

const (
	TypeCommission   TransactionType = "commission"
	TypeSubscription TransactionType = "subscription"
	TypeAdPromotion  TransactionType = "ad_promotion"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TypeCommission, TypeSubscription, TypeAdPromotion:
		return true
	default:
		return false
	}
}

type TransactionStatus string

const (
	TxStatusCompleted TransactionStatus = "completed"
	TxStatusPending   TransactionStatus = "pending"
)

// Transaction is one immutable ledger entry. Commission entries carry the
// booking they settle; the pair (type=commission, booking id) is unique,
// which is what makes settlement idempotent per booking.
type Transaction struct {
	id         uuid.UUID
	businessID uuid.UUID
	bookingID  *uuid.UUID
	txType     TransactionType
	amount     pricing.Money
	status     TransactionStatus
	createdAt  time.Time
}

// NewCommission derives the platform's cut of a completed booking:
// totalPrice multiplied by the business's commission rate (a percentage).
func NewCommission(businessID, bookingID uuid.UUID, totalPrice pricing.Money, rate decimal.Decimal, now time.Time) (*Transaction, error) {
	amount := totalPrice.Percent(rate)
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	bid := bookingID
	return &Transaction{
		id:         uuid.New(),
		businessID: businessID,
		bookingID:  &bid,
		txType:     TypeCommission,
		amount:     amount,
		status:     TxStatusCompleted,
		createdAt:  now,
	}, nil
}

func ReconstructTransaction(
	id, businessID uuid.UUID,
	bookingID *uuid.UUID,
	txType TransactionType,
	amount pricing.Money,
	status TransactionStatus,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:         id,
		businessID: businessID,
		bookingID:  bookingID,
		txType:     txType,
		amount:     amount,
		status:     status,
		createdAt:  createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID             { return t.id }
func (t *Transaction) BusinessID() uuid.UUID     { return t.businessID }
func (t *Transaction) BookingID() *uuid.UUID     { return t.bookingID }
func (t *Transaction) Type() TransactionType     { return t.txType }
func (t *Transaction) Amount() pricing.Money     { return t.amount }
func (t *Transaction) Status() TransactionStatus { return t.status }
func (t *Transaction) CreatedAt() time.Time      { return t.createdAt }
