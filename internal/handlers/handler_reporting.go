package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/caixa_ledger/internal/core/ports/services"
	"github.com/SscSPs/caixa_ledger/internal/dto"
	"github.com/SscSPs/caixa_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to the cross-unit reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/relatorios")
	{
		reports.GET("/resumo-financeiro", h.getFinancialSummary)
		reports.GET("/vendas-por-forma", h.getSalesByPaymentMethod)
		reports.GET("/vendas-por-unidade", h.getSalesByUnit)
		reports.GET("/ticket-medio", h.getTicketAverage)
		reports.GET("/pagamentos-pendentes", h.getPendingPayments)
	}
}

// reportParams binds and parses the query shared by every report. It writes the
// error response itself and returns false when the query is unusable.
func reportParams(c *gin.Context) (domain.ReportParams, bool) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return domain.ReportParams{}, false
	}
	params, err := q.ToReportParams()
	if err != nil {
		respondError(c, err, "Invalid report parameters")
		return domain.ReportParams{}, false
	}
	return params, true
}

// serveReport runs one generator and writes its view. The generic form keeps the
// five report endpoints down to their route and name.
func serveReport[T any](c *gin.Context, name string, generate func(context.Context, domain.ReportParams) (*T, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := reportParams(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("report", name), slog.String("period", string(params.Period)))
	logger.Info("Received request to generate report")

	view, err := generate(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	logger.Info("Report generated successfully")
	c.JSON(http.StatusOK, view)
}

func (h *reportingHandler) getFinancialSummary(c *gin.Context) {
	serveReport(c, "resumo-financeiro", h.reportingService.GenerateFinancialSummary)
}

func (h *reportingHandler) getSalesByPaymentMethod(c *gin.Context) {
	serveReport(c, "vendas-por-forma", h.reportingService.GenerateSalesByPaymentMethod)
}

func (h *reportingHandler) getSalesByUnit(c *gin.Context) {
	serveReport(c, "vendas-por-unidade", h.reportingService.GenerateSalesByUnit)
}

func (h *reportingHandler) getTicketAverage(c *gin.Context) {
	serveReport(c, "ticket-medio", h.reportingService.GenerateTicketAverage)
}

func (h *reportingHandler) getPendingPayments(c *gin.Context) {
	serveReport(c, "pagamentos-pendentes", h.reportingService.GeneratePendingPayments)
}
