package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/caixa_ledger/internal/core/ports/services"
	"github.com/SscSPs/caixa_ledger/internal/dto"
	"github.com/SscSPs/caixa_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerHandler handles HTTP requests related to cash registers (caixas).
type registerHandler struct {
	registerService portssvc.RegisterSvcFacade
}

func newRegisterHandler(rs portssvc.RegisterSvcFacade) *registerHandler {
	return &registerHandler{registerService: rs}
}

// registerRegisterRoutes registers the register routes below a unit and returns
// the per-register group.
func registerRegisterRoutes(unit *gin.RouterGroup, registerService portssvc.RegisterSvcFacade) *gin.RouterGroup {
	h := newRegisterHandler(registerService)

	registers := unit.Group("/caixas")
	{
		registers.POST("", h.createRegister)
		registers.GET("", h.listRegisters)
		registers.GET("/:caixaID", h.getRegister)
		registers.PUT("/:caixaID", h.updateRegister)
		registers.DELETE("/:caixaID", h.deleteRegister)
		registers.POST("/:caixaID/abrir", h.openRegister)
		registers.POST("/:caixaID/fechar", h.closeRegister)
	}
	return registers.Group("/:caixaID")
}

func (h *registerHandler) createRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	unitID := c.Param("unitID")

	resp, err := h.registerService.CreateRegister(c.Request.Context(), unitID, middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to create register")
		return
	}

	logger.Info("Register created successfully", slog.String("unit_id", unitID), slog.String("register_id", resp.ID))
	c.JSON(http.StatusCreated, resp)
}

func (h *registerHandler) listRegisters(c *gin.Context) {
	registers, err := h.registerService.ListRegisters(c.Request.Context(), c.Param("unitID"))
	if err != nil {
		respondError(c, err, "Failed to list registers")
		return
	}
	c.JSON(http.StatusOK, registers)
}

func (h *registerHandler) getRegister(c *gin.Context) {
	register, err := h.registerService.GetRegister(c.Request.Context(), c.Param("unitID"), c.Param("caixaID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve register")
		return
	}
	if register == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Caixa não encontrado"})
		return
	}
	c.JSON(http.StatusOK, register)
}

// updateRegister only ever touches the accepted payment methods.
func (h *registerHandler) updateRegister(c *gin.Context) {
	var req dto.UpdateRegisterRequest
	if !bindJSON(c, &req, "UpdateRegister") {
		return
	}

	register, err := h.registerService.UpdateRegisterPaymentMethods(c.Request.Context(),
		c.Param("unitID"), c.Param("caixaID"), *req.PaymentMethods, middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to update register")
		return
	}
	c.JSON(http.StatusOK, register)
}

func (h *registerHandler) openRegister(c *gin.Context) {
	h.setStatus(c, domain.RegisterOpen)
}

func (h *registerHandler) closeRegister(c *gin.Context) {
	h.setStatus(c, domain.RegisterClosed)
}

func (h *registerHandler) setStatus(c *gin.Context, status domain.RegisterStatus) {
	ctx := c.Request.Context()
	unitID, registerID, actor := c.Param("unitID"), c.Param("caixaID"), middleware.ActorFromContext(c)

	var (
		register *domain.Register
		err      error
	)
	if status == domain.RegisterOpen {
		register, err = h.registerService.OpenRegister(ctx, unitID, registerID, actor)
	} else {
		register, err = h.registerService.CloseRegister(ctx, unitID, registerID, actor)
	}
	if err != nil {
		respondError(c, err, "Failed to change register status")
		return
	}
	c.JSON(http.StatusOK, register)
}

func (h *registerHandler) deleteRegister(c *gin.Context) {
	deleted, err := h.registerService.DeleteRegister(c.Request.Context(), c.Param("unitID"), c.Param("caixaID"), middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to delete register")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Caixa não encontrado"})
		return
	}
	c.Status(http.StatusNoContent)
}
