package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/caixa_ledger/internal/core/ports/services"
	"github.com/SscSPs/caixa_ledger/internal/dto"
	"github.com/SscSPs/caixa_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// movementHandler handles HTTP requests related to movements (movimentos).
// The :caixaID segment accepts a register id or its number.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
}

func newMovementHandler(ms portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{movementService: ms}
}

func registerMovementRoutes(register *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	h := newMovementHandler(movementService)

	movements := register.Group("/movimentos")
	{
		movements.POST("", h.createMovement)
		movements.POST("/lote", h.createMovementsBatch)
		movements.GET("", h.listMovements)
		movements.GET("/:movID", h.getMovement)
		movements.DELETE("/:movID", h.deleteMovement)
	}
}

func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMovementRequest
	if !bindJSON(c, &req, "CreateMovement") {
		return
	}

	resp, err := h.movementService.CreateMovement(c.Request.Context(), c.Param("unitID"), c.Param("caixaID"), req, middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to create movement")
		return
	}

	logger.Info("Movement created successfully", slog.String("movement_id", resp.ID))
	c.JSON(http.StatusCreated, resp)
}

func (h *movementHandler) createMovementsBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMovementsBatchRequest
	if !bindJSON(c, &req, "CreateMovementsBatch") {
		return
	}

	resp, err := h.movementService.CreateMovementsBatch(c.Request.Context(), c.Param("unitID"), c.Param("caixaID"), req.Movements, middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to create movement batch")
		return
	}

	logger.Info("Movement batch created successfully", slog.Int("count", resp.Quantity))
	c.JSON(http.StatusCreated, resp)
}

func (h *movementHandler) listMovements(c *gin.Context) {
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	date, err := dto.ParseDate("data", params.Date)
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}

	movements, err := h.movementService.ListMovements(c.Request.Context(), c.Param("unitID"), c.Param("caixaID"), date)
	if err != nil {
		respondError(c, err, "Failed to list movements")
		return
	}
	c.JSON(http.StatusOK, movements)
}

func (h *movementHandler) getMovement(c *gin.Context) {
	movement, err := h.movementService.GetMovement(c.Request.Context(), c.Param("unitID"), c.Param("caixaID"), c.Param("movID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve movement")
		return
	}
	c.JSON(http.StatusOK, movement)
}

func (h *movementHandler) deleteMovement(c *gin.Context) {
	deleted, err := h.movementService.DeleteMovement(c.Request.Context(), c.Param("unitID"), c.Param("caixaID"), c.Param("movID"), middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to delete movement")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movimento não encontrado"})
		return
	}
	c.Status(http.StatusNoContent)
}
