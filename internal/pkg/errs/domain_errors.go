package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Business errors
	ErrBusinessNotFound  = errors.New("business not found")
	ErrBusinessSuspended = errors.New("business is suspended")

	// Unit errors
	ErrUnitNotFound    = errors.New("unit not found")
	ErrUnitUnavailable = errors.New("unit is not available for booking")
	ErrQuotaExceeded   = errors.New("unit quota exceeded for subscription plan")

	// Booking errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingConflict    = errors.New("booking conflict")
	ErrInvalidTransition  = errors.New("invalid booking state transition")
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrPaymentNotVerified = errors.New("payment has not been verified")

	// Promotion errors
	ErrPromotionNotFound       = errors.New("promotion not found")
	ErrPromotionExpired        = errors.New("promotion is not valid at this time")
	ErrInvalidPromotionScope   = errors.New("promotion does not belong to the booking's business")
	ErrPromotionAlreadyApplied = errors.New("promotion already applied to this booking")

	// Pricing rule errors
	ErrPricingRuleNotFound = errors.New("pricing rule not found")

	// Settlement errors
	ErrBookingNotCompleted = errors.New("booking is not completed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Idempotency errors
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
