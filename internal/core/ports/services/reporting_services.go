package services

import (
	"context"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// GenerateFinancialSummary rolls revenue, expenses, profit and pending values up.
	GenerateFinancialSummary(ctx context.Context, params domain.ReportParams) (*domain.FinancialSummary, error)

	// GenerateSalesByPaymentMethod groups settled revenue by payment form.
	GenerateSalesByPaymentMethod(ctx context.Context, params domain.ReportParams) (*domain.SalesByPaymentMethod, error)

	// GenerateSalesByUnit groups settled revenue by unit.
	GenerateSalesByUnit(ctx context.Context, params domain.ReportParams) (*domain.SalesByUnit, error)

	// GenerateTicketAverage computes bucketed ticket averages with trend.
	GenerateTicketAverage(ctx context.Context, params domain.ReportParams) (*domain.TicketAverage, error)

	// GeneratePendingPayments lists pending entrada movements, oldest first.
	GeneratePendingPayments(ctx context.Context, params domain.ReportParams) (*domain.PendingPayments, error)
}
