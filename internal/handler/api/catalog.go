package api

import (
	"net/http"
	"time"

	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler exposes the owner-side pricing toolkit plus the public
// quote endpoint.
type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
	quoteQueries    queries.QuoteQueries
}

func NewCatalogHandler(
	catalogCommands commands.CatalogCommands,
	catalogQueries queries.CatalogQueries,
	quoteQueries queries.QuoteQueries,
) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
		quoteQueries:    quoteQueries,
	}
}

// @Summary Quote a stay
// @Description Price a prospective stay without creating a booking. The same calculator runs at booking creation.
// @Tags quotes
// @Produce json
// @Param unit_id query string true "Unit ID"
// @Param check_in query string true "Check-in (RFC 3339)"
// @Param check_out query string true "Check-out (RFC 3339)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quote [get]
func (h *CatalogHandler) Quote(c *gin.Context) {
	unitID, err := uuid.Parse(c.Query("unit_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit_id format"})
		return
	}
	checkIn, err := time.Parse(time.RFC3339, c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check_in format"})
		return
	}
	checkOut, err := time.Parse(time.RFC3339, c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check_out format"})
		return
	}

	view, err := h.quoteQueries.Quote(c.Request.Context(), unitID, checkIn, checkOut)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Create pricing rule
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.CreatePricingRuleRequest true "Rule"
// @Success 201 {object} resdto.PricingRuleResponse
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /businesses/{id}/pricing-rules [post]
func (h *CatalogHandler) CreatePricingRule(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rule, err := h.catalogCommands.CreatePricingRule(c.Request.Context(), req.ToParams(businessID), act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPricingRule(rule))
}

// @Summary List pricing rules
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {array} resdto.PricingRuleResponse
// @Failure 403 {object} map[string]string
// @Router /businesses/{id}/pricing-rules [get]
func (h *CatalogHandler) ListPricingRules(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.catalogQueries.ListPricingRules(c.Request.Context(), businessID, act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingRuleViews(views))
}

// @Summary Toggle pricing rule
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param rule_id path string true "Rule ID"
// @Param request body reqdto.SetActiveRequest true "Active flag"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /businesses/{id}/pricing-rules/{rule_id} [patch]
func (h *CatalogHandler) SetPricingRuleActive(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	ruleID, ok := parseUUIDParam(c, "rule_id")
	if !ok {
		return
	}

	var req reqdto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.catalogCommands.SetPricingRuleActive(c.Request.Context(), businessID, ruleID, req.Active, act); err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /businesses/{id}/promotions [post]
func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	promo, err := h.catalogCommands.CreatePromotion(c.Request.Context(), req.ToParams(businessID), act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromotion(promo))
}

// @Summary List promotions
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {array} resdto.PromotionResponse
// @Failure 403 {object} map[string]string
// @Router /businesses/{id}/promotions [get]
func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.catalogQueries.ListPromotions(c.Request.Context(), businessID, act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionViews(views))
}

// @Summary Toggle promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param promotion_id path string true "Promotion ID"
// @Param request body reqdto.SetActiveRequest true "Active flag"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /businesses/{id}/promotions/{promotion_id} [patch]
func (h *CatalogHandler) SetPromotionActive(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	promotionID, ok := parseUUIDParam(c, "promotion_id")
	if !ok {
		return
	}

	var req reqdto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.catalogCommands.SetPromotionActive(c.Request.Context(), businessID, promotionID, req.Active, act); err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
