package api

import (
	"net/http"

	"stayops/internal/handler/middleware"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"
	"stayops/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondUseCaseError translates usecase sentinels into HTTP responses.
// Handlers call it as their default branch; anything unrecognized is a 500.
func respondUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrForbidden), errs.Is(err, queries.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions for this business"})
	case errs.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errs.Is(err, errs.ErrUnitNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
	case errs.Is(err, errs.ErrBusinessNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
	case errs.Is(err, errs.ErrPromotionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
	case errs.Is(err, errs.ErrPricingRuleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pricing rule not found"})
	case errs.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid booking state transition"})
	case errs.Is(err, errs.ErrPaymentNotVerified):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment must be verified before check-in"})
	case errs.Is(err, errs.ErrPromotionAlreadyApplied):
		c.JSON(http.StatusConflict, gin.H{"error": "A promotion was already applied to this booking"})
	case errs.Is(err, errs.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking conflict"})
	case errs.Is(err, errs.ErrBookingNotCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking is not completed"})
	case errs.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out must be after check-in"})
	case errs.Is(err, errs.ErrInvalidPromotionScope):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Promotion does not belong to this business"})
	case errs.Is(err, errs.ErrPromotionExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Promotion is not valid at this time"})
	case errs.Is(err, errs.ErrUnitUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unit is not available for booking"})
	case errs.Is(err, errs.ErrQuotaExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unit quota exceeded for subscription plan"})
	case errs.Is(err, errs.ErrBusinessSuspended):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Business is not active"})
	case errs.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// currentActor fetches the authenticated actor set by the auth middleware.
// Missing actor means a route was wired without RequireAuth.
func currentActor(c *gin.Context) (shared.Actor, bool) {
	act, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
	return act, ok
}

// parseUUIDParam reads a path parameter as a UUID, answering 400 itself on
// malformed input.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}
