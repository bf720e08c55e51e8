package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/caixa_ledger/internal/core/ports/services"
	"github.com/SscSPs/caixa_ledger/internal/dto"
	"github.com/SscSPs/caixa_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// referenceHandler serves expense categories and payment methods.
type referenceHandler struct {
	referenceService portssvc.ReferenceSvcFacade
}

func newReferenceHandler(rs portssvc.ReferenceSvcFacade) *referenceHandler {
	return &referenceHandler{referenceService: rs}
}

func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceSvcFacade) {
	h := newReferenceHandler(referenceService)

	categories := rg.Group("/categorias-despesa")
	{
		categories.GET("", h.listExpenseCategories)
		categories.POST("", h.upsertExpenseCategories)
		categories.DELETE("/:id", h.deleteExpenseCategory)
	}

	methods := rg.Group("/formas-pagamento")
	{
		methods.GET("", h.listPaymentMethods)
		methods.POST("", h.upsertPaymentMethods)
		methods.DELETE("/:id", h.deletePaymentMethod)
	}
}

func (h *referenceHandler) listExpenseCategories(c *gin.Context) {
	categories, err := h.referenceService.ListExpenseCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list expense categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *referenceHandler) upsertExpenseCategories(c *gin.Context) {
	var req dto.UpsertReferenceRequest
	if !bindJSON(c, &req, "UpsertExpenseCategories") {
		return
	}
	categories, err := h.referenceService.UpsertExpenseCategories(c.Request.Context(), req, middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to save expense categories")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Expense categories saved", slog.Int("count", len(categories)))
	c.JSON(http.StatusOK, categories)
}

func (h *referenceHandler) deleteExpenseCategory(c *gin.Context) {
	if err := h.referenceService.DeleteExpenseCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete expense category")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *referenceHandler) listPaymentMethods(c *gin.Context) {
	methods, err := h.referenceService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list payment methods")
		return
	}
	c.JSON(http.StatusOK, methods)
}

func (h *referenceHandler) upsertPaymentMethods(c *gin.Context) {
	var req dto.UpsertReferenceRequest
	if !bindJSON(c, &req, "UpsertPaymentMethods") {
		return
	}
	methods, err := h.referenceService.UpsertPaymentMethods(c.Request.Context(), req, middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to save payment methods")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payment methods saved", slog.Int("count", len(methods)))
	c.JSON(http.StatusOK, methods)
}

func (h *referenceHandler) deletePaymentMethod(c *gin.Context) {
	if err := h.referenceService.DeletePaymentMethod(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete payment method")
		return
	}
	c.Status(http.StatusNoContent)
}
