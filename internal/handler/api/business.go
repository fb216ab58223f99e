package api

import (
	"net/http"

	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	businessCommands   commands.BusinessCommands
	bookingQueries     queries.BookingQueries
	entitlementQueries queries.EntitlementQueries
	settlementQueries  queries.SettlementQueries
}

func NewBusinessHandler(
	businessCommands commands.BusinessCommands,
	bookingQueries queries.BookingQueries,
	entitlementQueries queries.EntitlementQueries,
	settlementQueries queries.SettlementQueries,
) *BusinessHandler {
	return &BusinessHandler{
		businessCommands:   businessCommands,
		bookingQueries:     bookingQueries,
		entitlementQueries: entitlementQueries,
		settlementQueries:  settlementQueries,
	}
}

// @Summary Register business
// @Description Register a new tenant. Businesses enter pending until an admin activates them.
// @Tags businesses
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterBusinessRequest true "Business"
// @Success 201 {object} resdto.BusinessResponse
// @Failure 422 {object} map[string]string
// @Router /businesses [post]
func (h *BusinessHandler) Register(c *gin.Context) {
	var req reqdto.RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	b, err := h.businessCommands.RegisterBusiness(c.Request.Context(), req.ToParams())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBusiness(b))
}

// @Summary List business bookings
// @Tags businesses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 403 {object} map[string]string
// @Router /businesses/{id}/bookings [get]
func (h *BusinessHandler) ListBookings(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.bookingQueries.ListByBusiness(c.Request.Context(), businessID, act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Get entitlements
// @Description Resolve the modules, unit quota and commission rate the business's plan and category allow.
// @Tags businesses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {object} resdto.EntitlementsResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /businesses/{id}/entitlements [get]
func (h *BusinessHandler) Entitlements(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.entitlementQueries.GetEntitlements(c.Request.Context(), businessID, act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntitlementsView(view))
}

// @Summary Business revenue
// @Description GTV, platform commission and net owner revenue for one business.
// @Tags businesses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {object} resdto.SettlementSummaryResponse
// @Failure 403 {object} map[string]string
// @Router /businesses/{id}/revenue [get]
func (h *BusinessHandler) Revenue(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.settlementQueries.BusinessRevenue(c.Request.Context(), businessID, act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummaryView(view))
}
