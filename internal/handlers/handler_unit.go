package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/caixa_ledger/internal/core/ports/services"
	"github.com/SscSPs/caixa_ledger/internal/dto"
	"github.com/SscSPs/caixa_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// unitHandler handles HTTP requests related to units (unidades).
type unitHandler struct {
	unitService portssvc.UnitSvcFacade
}

func newUnitHandler(us portssvc.UnitSvcFacade) *unitHandler {
	return &unitHandler{unitService: us}
}

// registerUnitRoutes registers the unit routes and returns the per-unit group
// so registers can be nested below it.
func registerUnitRoutes(rg *gin.RouterGroup, unitService portssvc.UnitSvcFacade) *gin.RouterGroup {
	h := newUnitHandler(unitService)

	units := rg.Group("/unidades")
	{
		units.POST("", h.createUnit)
		units.GET("", h.listUnits)
		units.GET("/:unitID", h.getUnit)
		units.DELETE("/:unitID", h.deleteUnit)
	}
	return units.Group("/:unitID")
}

func (h *unitHandler) createUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUnitRequest
	if !bindJSON(c, &req, "CreateUnit") {
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), req, middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to create unit")
		return
	}

	logger.Info("Unit created successfully", slog.String("unit_id", unit.UnitID))
	c.JSON(http.StatusCreated, unit)
}

func (h *unitHandler) listUnits(c *gin.Context) {
	units, err := h.unitService.ListUnits(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list units")
		return
	}
	c.JSON(http.StatusOK, units)
}

func (h *unitHandler) getUnit(c *gin.Context) {
	unit, err := h.unitService.GetUnit(c.Request.Context(), c.Param("unitID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve unit")
		return
	}
	c.JSON(http.StatusOK, unit)
}

func (h *unitHandler) deleteUnit(c *gin.Context) {
	deleted, err := h.unitService.DeleteUnit(c.Request.Context(), c.Param("unitID"), middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to delete unit")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unidade não encontrada"})
		return
	}
	c.Status(http.StatusNoContent)
}
