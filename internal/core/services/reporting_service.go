package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/caixa_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/caixa_ledger/internal/core/ports/services"
	"github.com/SscSPs/caixa_ledger/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	unitRepo      portsrepo.UnitReader
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(unitRepo portsrepo.UnitReader, repo portsrepo.ReportingRepository, opts ...Option) portssvc.ReportingService {
	svc := &reportingService{
		unitRepo:      unitRepo,
		reportingRepo: repo,
	}
	svc.apply(opts)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// reportScope is the resolved input of a report: the period, the units in scope
// and the movements of each unit inside the period.
type reportScope struct {
	period    domain.DateRange
	now       time.Time
	units     []domain.Unit
	movements map[string][]domain.Movement
}

func (sc *reportScope) all() []domain.Movement {
	var out []domain.Movement
	for _, u := range sc.units {
		out = append(out, sc.movements[u.UnitID]...)
	}
	return out
}

func (sc *reportScope) unitNames() map[string]string {
	names := make(map[string]string, len(sc.units))
	for _, u := range sc.units {
		names[u.UnitID] = u.Name
	}
	return names
}

// load resolves the period, the units and reads their movements. Explicitly requested
// units must exist and be active; an empty list means every active unit.
func (s *reportingService) load(ctx context.Context, params domain.ReportParams) (*reportScope, error) {
	now := params.Now
	if now.IsZero() {
		now = s.Now()
	}
	period, err := domain.ResolvePeriod(params.Period, params.StartDate, params.EndDate, now)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return nil, apperrors.NewValidationError("periodo", err.Error())
		}
		return nil, err
	}

	units, err := s.unitsInScope(ctx, params.UnitIDs)
	if err != nil {
		return nil, err
	}

	scope := &reportScope{period: period, now: now, units: units, movements: make(map[string][]domain.Movement, len(units))}
	for _, u := range units {
		movements, err := s.reportingRepo.ListMovementsInPeriod(ctx, u.UnitID, period.Start, period.End)
		if err != nil {
			s.LogError(ctx, err, "Failed to read movements for report",
				slog.String("unit_id", u.UnitID),
				slog.String("from", period.Start.Format(time.RFC3339)),
				slog.String("to", period.End.Format(time.RFC3339)))
			return nil, fmt.Errorf("failed to read movements of unit %s: %w", u.UnitID, err)
		}
		scope.movements[u.UnitID] = movements
	}
	return scope, nil
}

func (s *reportingService) unitsInScope(ctx context.Context, unitIDs []string) ([]domain.Unit, error) {
	if len(unitIDs) == 0 {
		units, err := s.unitRepo.ListUnits(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list units: %w", err)
		}
		return units, nil
	}

	seen := make(map[string]bool, len(unitIDs))
	units := make([]domain.Unit, 0, len(unitIDs))
	for _, id := range unitIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		unit, err := s.unitRepo.FindUnitByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError(msgUnitNotFound + ": " + id)
			}
			return nil, fmt.Errorf("failed to get unit %s: %w", id, err)
		}
		if !unit.IsActive {
			return nil, apperrors.NewNotFoundError(msgUnitNotFound + ": " + id)
		}
		units = append(units, *unit)
	}
	return units, nil
}

func (s *reportingService) GenerateFinancialSummary(ctx context.Context, params domain.ReportParams) (*domain.FinancialSummary, error) {
	scope, err := s.load(ctx, params)
	if err != nil {
		return nil, err
	}

	summary := &domain.FinancialSummary{
		Period:          scope.period,
		FinancialTotals: accounting.SummarizeMovements(nil),
		ByUnit:          make([]domain.UnitFinancialSummary, 0, len(scope.units)),
	}
	for _, u := range scope.units {
		totals := accounting.SummarizeMovements(scope.movements[u.UnitID])
		summary.FinancialTotals = accounting.MergeTotals(summary.FinancialTotals, totals)
		summary.ByUnit = append(summary.ByUnit, domain.UnitFinancialSummary{UnitID: u.UnitID, UnitName: u.Name, FinancialTotals: totals})
	}

	s.LogInfo(ctx, "Financial summary generated",
		slog.Int("unit_count", len(scope.units)),
		slog.String("revenue", summary.Revenue.String()),
		slog.String("expenses", summary.Expenses.String()))
	return summary, nil
}

func (s *reportingService) GenerateSalesByPaymentMethod(ctx context.Context, params domain.ReportParams) (*domain.SalesByPaymentMethod, error) {
	scope, err := s.load(ctx, params)
	if err != nil {
		return nil, err
	}

	total, groups := accounting.GroupSalesByPaymentForm(scope.all())
	s.LogInfo(ctx, "Sales by payment method generated", slog.String("total", total.String()))
	return &domain.SalesByPaymentMethod{Period: scope.period, Total: total, Groups: groups}, nil
}

func (s *reportingService) GenerateSalesByUnit(ctx context.Context, params domain.ReportParams) (*domain.SalesByUnit, error) {
	scope, err := s.load(ctx, params)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.UnitSales, 0, len(scope.units))
	for _, u := range scope.units {
		sales = append(sales, accounting.UnitSalesOf(u.UnitID, u.Name, scope.movements[u.UnitID]))
	}
	total, ranked := accounting.RankUnitSales(sales)

	s.LogInfo(ctx, "Sales by unit generated", slog.Int("unit_count", len(ranked)), slog.String("total", total.String()))
	return &domain.SalesByUnit{Period: scope.period, Total: total, Units: ranked}, nil
}

func (s *reportingService) GenerateTicketAverage(ctx context.Context, params domain.ReportParams) (*domain.TicketAverage, error) {
	scope, err := s.load(ctx, params)
	if err != nil {
		return nil, err
	}

	granularity := accounting.ChooseGranularity(scope.period)
	report := &domain.TicketAverage{
		Period:      scope.period,
		Granularity: granularity,
		Overall:     accounting.TicketSeriesOf(scope.all(), scope.period, granularity),
	}
	if params.ByUnit {
		report.ByUnit = make([]domain.TicketSeries, 0, len(scope.units))
		for _, u := range scope.units {
			series := accounting.TicketSeriesOf(scope.movements[u.UnitID], scope.period, granularity)
			series.UnitID = u.UnitID
			series.UnitName = u.Name
			report.ByUnit = append(report.ByUnit, series)
		}
	}

	s.LogInfo(ctx, "Ticket average generated",
		slog.String("granularity", string(granularity)),
		slog.Int("bucket_count", len(report.Overall.Buckets)))
	return report, nil
}

func (s *reportingService) GeneratePendingPayments(ctx context.Context, params domain.ReportParams) (*domain.PendingPayments, error) {
	scope, err := s.load(ctx, params)
	if err != nil {
		return nil, err
	}

	total, items := accounting.PendingPaymentsOf(scope.all(), scope.unitNames(), scope.now)
	s.LogInfo(ctx, "Pending payments listed", slog.Int("count", len(items)), slog.String("total", total.String()))
	return &domain.PendingPayments{Period: scope.period, Total: total, Count: len(items), Items: items}, nil
}
