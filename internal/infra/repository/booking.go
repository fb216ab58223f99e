package repository

import (
	"context"
	"time"

	"stayops/internal/domain/booking"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/settlement"
	"stayops/internal/infra"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingRepository struct {
	pool db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingColumns = `
	id, business_id, unit_id, guest_id, check_in, check_out, nights,
	total_price, status, verified_payment, payment_proof_ref,
	applied_promotion_id, identity_number, nationality, phone,
	damage_note, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, business_id, unit_id, guest_id, check_in, check_out, nights,
			total_price, status, verified_payment, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(), b.BusinessID(), b.UnitID(), b.GuestID(),
		b.CheckInDate(), b.CheckOutDate(), b.Nights(),
		b.TotalPrice().Amount(), b.Status().String(), b.VerifiedPayment(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanBooking(ctx, q, query, id)
}

// FindByIDForUpdate takes the row lock that serializes transitions per
// booking. Must run inside a transaction.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	return r.scanBooking(ctx, tx, query, id)
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const query = `
		UPDATE bookings SET
			check_in = $2, check_out = $3, nights = $4, total_price = $5,
			status = $6, verified_payment = $7, payment_proof_ref = $8,
			applied_promotion_id = $9, identity_number = $10, nationality = $11,
			phone = $12, damage_note = $13, updated_at = now()
		WHERE id = $1`

	var identityNumber, nationality, phone *string
	if identity := b.GuestIdentity(); identity != nil {
		identityNumber = &identity.IdentityNumber
		nationality = &identity.Nationality
		phone = &identity.Phone
	}

	tag, err := tx.Exec(ctx, query,
		b.ID(), b.CheckInDate(), b.CheckOutDate(), b.Nights(), b.TotalPrice().Amount(),
		b.Status().String(), b.VerifiedPayment(), b.PaymentProofRef(),
		b.AppliedPromotionID(), identityNumber, nationality, phone, b.DamageNote(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ListByBusiness(ctx context.Context, q db.DBTX, businessID uuid.UUID) ([]*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE business_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by business", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

// ListFigures returns the thin price/status projection the settlement
// summary works from. An empty businessID lists the whole platform.
func (r *BookingRepository) ListFigures(ctx context.Context, q db.DBTX, businessID *uuid.UUID) ([]settlement.BookingFigure, error) {
	query := `SELECT total_price, status FROM bookings`
	args := []any{}
	if businessID != nil {
		query += ` WHERE business_id = $1`
		args = append(args, *businessID)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking figures", err)
	}
	defer rows.Close()

	var figures []settlement.BookingFigure
	for rows.Next() {
		var amount decimal.Decimal
		var status string
		if err := rows.Scan(&amount, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking figure", err)
		}
		figures = append(figures, settlement.BookingFigure{
			TotalPrice: pricing.NewMoney(amount),
			Status:     booking.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking figures", err)
	}
	return figures, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *BookingRepository) scanBooking(ctx context.Context, q db.DBTX, query string, id uuid.UUID) (*booking.Booking, error) {
	b, err := scanBookingRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func scanBookingRow(row rowScanner) (*booking.Booking, error) {
	var (
		id, businessID, unitID             uuid.UUID
		guestID, appliedPromotionID        *uuid.UUID
		checkIn, checkOut                  time.Time
		nights                             int
		totalPrice                         decimal.Decimal
		status                             string
		verifiedPayment                    bool
		paymentProofRef, damageNote        *string
		identityNumber, nationality, phone *string
		createdAt, updatedAt               time.Time
	)

	err := row.Scan(
		&id, &businessID, &unitID, &guestID, &checkIn, &checkOut, &nights,
		&totalPrice, &status, &verifiedPayment, &paymentProofRef,
		&appliedPromotionID, &identityNumber, &nationality, &phone,
		&damageNote, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	var identity *booking.GuestIdentity
	if identityNumber != nil {
		identity = &booking.GuestIdentity{
			IdentityNumber: *identityNumber,
			Nationality:    deref(nationality),
			Phone:          deref(phone),
		}
	}

	return booking.ReconstructBooking(
		id, businessID, unitID, guestID, checkIn, checkOut, nights,
		pricing.NewMoney(totalPrice), booking.Status(status),
		verifiedPayment, paymentProofRef, appliedPromotionID,
		identity, damageNote, createdAt, updatedAt,
	), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
