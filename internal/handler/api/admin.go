package api

import (
	"net/http"

	"stayops/internal/domain/business"
	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups the platform-operator endpoints. All routes behind it
// require the admin role.
type AdminHandler struct {
	businessCommands  commands.BusinessCommands
	settlementQueries queries.SettlementQueries
}

func NewAdminHandler(businessCommands commands.BusinessCommands, settlementQueries queries.SettlementQueries) *AdminHandler {
	return &AdminHandler{
		businessCommands:  businessCommands,
		settlementQueries: settlementQueries,
	}
}

// @Summary Set business status
// @Description Activate, suspend or reject a business.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.SetBusinessStatusRequest true "Status"
// @Success 200 {object} resdto.BusinessResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/businesses/{id}/status [patch]
func (h *AdminHandler) SetBusinessStatus(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.SetBusinessStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	b, err := h.businessCommands.SetBusinessStatus(c.Request.Context(), businessID, business.Status(req.Status), act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBusiness(b))
}

// @Summary Set commission override
// @Description Set or clear a negotiated commission rate that replaces the plan default.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.SetCommissionOverrideRequest true "Rate"
// @Success 200 {object} resdto.BusinessResponse
// @Failure 404 {object} map[string]string
// @Router /admin/businesses/{id}/commission [patch]
func (h *AdminHandler) SetCommissionOverride(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.SetCommissionOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	b, err := h.businessCommands.SetCommissionOverride(c.Request.Context(), businessID, req.Rate, act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBusiness(b))
}

// @Summary Platform settlement summary
// @Description GTV, platform commission and net owner revenue across the marketplace.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettlementSummaryResponse
// @Failure 403 {object} map[string]string
// @Router /admin/settlement/summary [get]
func (h *AdminHandler) SettlementSummary(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}

	view, err := h.settlementQueries.PlatformSummary(c.Request.Context(), act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummaryView(view))
}
