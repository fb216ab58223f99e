package api

import (
	"net/http"

	"stayops/internal/domain/unit"
	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	unitCommands   commands.UnitCommands
	catalogQueries queries.CatalogQueries
}

func NewUnitHandler(unitCommands commands.UnitCommands, catalogQueries queries.CatalogQueries) *UnitHandler {
	return &UnitHandler{
		unitCommands:   unitCommands,
		catalogQueries: catalogQueries,
	}
}

// @Summary Create unit
// @Description Create a unit under a business. The plan's unit quota is enforced.
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.CreateUnitRequest true "Unit"
// @Success 201 {object} resdto.UnitResponse
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /businesses/{id}/units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	u, err := h.unitCommands.CreateUnit(c.Request.Context(), req.ToParams(businessID), act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUnit(u))
}

// @Summary List units
// @Tags units
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {array} resdto.UnitResponse
// @Router /businesses/{id}/units [get]
func (h *UnitHandler) List(c *gin.Context) {
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.catalogQueries.ListUnits(c.Request.Context(), businessID)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnitViews(views))
}

// @Summary Get unit
// @Tags units
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} resdto.UnitResponse
// @Failure 404 {object} map[string]string
// @Router /units/{id} [get]
func (h *UnitHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.catalogQueries.GetUnit(c.Request.Context(), id)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnitView(view))
}

// @Summary Update unit
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.UpdateUnitRequest true "Unit"
// @Success 200 {object} resdto.UnitResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id} [patch]
func (h *UnitHandler) Update(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	u, err := h.unitCommands.UpdateUnit(c.Request.Context(), id, req.ToParams(), act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnit(u))
}

// @Summary Set unit status
// @Description Operational status transition. Blocked and maintenance statuses force the unit off public listing.
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.SetUnitStatusRequest true "Status"
// @Success 200 {object} resdto.UnitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/status [patch]
func (h *UnitHandler) SetStatus(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.SetUnitStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	u, err := h.unitCommands.SetUnitStatus(c.Request.Context(), id, unit.Status(req.Status), act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnit(u))
}

// @Summary Set unit availability
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.SetUnitAvailabilityRequest true "Availability"
// @Success 200 {object} resdto.UnitResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /units/{id}/availability [patch]
func (h *UnitHandler) SetAvailability(c *gin.Context) {
	act, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.SetUnitAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	u, err := h.unitCommands.SetUnitAvailability(c.Request.Context(), id, req.Available, act)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnit(u))
}
