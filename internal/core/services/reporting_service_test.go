package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	ledgerSuite
	centro   string
	shopping string
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.ledgerSuite.SetupTest()
	s.centro = s.createUnit("Centro")
	s.shopping = s.createUnit("Shopping")
}

// assertDecimal compares by value so 70 and 70.00 are equal.
func (s *ReportingServiceTestSuite) assertDecimal(want string, got decimal.Decimal, msgAndArgs ...any) {
	if !decimal.RequireFromString(want).Equal(got) {
		s.Fail("decimal mismatch: want "+want+", got "+got.String(), msgAndArgs...)
	}
}

func (s *ReportingServiceTestSuite) TestFinancialSummary() {
	registerID := s.createRegister(s.centro)
	s.record(s.centro, registerID, entrada(domain.Pix, "100", domain.Realizado, fixedNow))
	s.record(s.centro, registerID, entrada(domain.Credito, "50", domain.Pendente, fixedNow))
	s.record(s.centro, registerID, saida("30", "", fixedNow))

	summary, err := s.svc.Reporting.GenerateFinancialSummary(s.ctx, domain.ReportParams{Period: domain.PeriodDay})
	s.Require().NoError(err)

	s.assertDecimal("100", summary.Revenue)
	s.assertDecimal("30", summary.Expenses)
	s.assertDecimal("70", summary.Profit)
	s.assertDecimal("50", summary.Pending)
	s.assertDecimal("100", summary.ByPaymentForm[domain.Pix])
	s.assertDecimal("0", summary.ByPaymentForm[domain.Credito])

	s.Require().Len(summary.ByUnit, 2)
	s.Equal(s.centro, summary.ByUnit[0].UnitID)
	s.assertDecimal("70", summary.ByUnit[0].Profit)
	s.assertDecimal("0", summary.ByUnit[1].Revenue)
}

func (s *ReportingServiceTestSuite) TestSummaryIgnoresDeletedRegistersAndMovements() {
	kept := s.createRegister(s.centro)
	dropped := s.createRegister(s.centro)
	s.record(s.centro, kept, entrada(domain.Pix, "40", "", fixedNow))
	removed := s.record(s.centro, kept, entrada(domain.Pix, "15", "", fixedNow))
	s.record(s.centro, dropped, entrada(domain.Dinheiro, "500", "", fixedNow))

	_, err := s.svc.Movement.DeleteMovement(s.ctx, s.centro, kept, removed, "")
	s.Require().NoError(err)
	_, err = s.svc.Register.DeleteRegister(s.ctx, s.centro, dropped, "")
	s.Require().NoError(err)

	summary, err := s.svc.Reporting.GenerateFinancialSummary(s.ctx, domain.ReportParams{Period: domain.PeriodMonth})
	s.Require().NoError(err)
	s.assertDecimal("40", summary.Revenue)
}

func (s *ReportingServiceTestSuite) TestPercentagesAreZeroWithoutRevenue() {
	registerID := s.createRegister(s.centro)
	s.record(s.centro, registerID, entrada(domain.Pix, "80", domain.Pendente, fixedNow))

	byForm, err := s.svc.Reporting.GenerateSalesByPaymentMethod(s.ctx, domain.ReportParams{Period: domain.PeriodMonth})
	s.Require().NoError(err)
	s.assertDecimal("0", byForm.Total)
	s.Len(byForm.Groups, len(domain.PaymentForms))
	for _, g := range byForm.Groups {
		s.assertDecimal("0", g.Percent, "form %s", g.PaymentForm)
	}

	byUnit, err := s.svc.Reporting.GenerateSalesByUnit(s.ctx, domain.ReportParams{Period: domain.PeriodMonth})
	s.Require().NoError(err)
	for _, u := range byUnit.Units {
		s.assertDecimal("0", u.Percent, "unit %s", u.UnitID)
	}
}

func (s *ReportingServiceTestSuite) TestSalesByUnitRanksLargestFirst() {
	centroReg := s.createRegister(s.centro)
	shoppingReg := s.createRegister(s.shopping)
	s.record(s.centro, centroReg, entrada(domain.Pix, "25", "", fixedNow))
	s.record(s.shopping, shoppingReg, entrada(domain.Debito, "75", "", fixedNow))
	s.record(s.shopping, shoppingReg, entrada(domain.Debito, "10", domain.Pendente, fixedNow))

	report, err := s.svc.Reporting.GenerateSalesByUnit(s.ctx, domain.ReportParams{Period: domain.PeriodWeek})
	s.Require().NoError(err)

	s.assertDecimal("100", report.Total)
	s.Require().Len(report.Units, 2)
	s.Equal(s.shopping, report.Units[0].UnitID)
	s.Equal(1, report.Units[0].SalesCount)
	s.assertDecimal("75", report.Units[0].Percent)
	s.assertDecimal("25", report.Units[1].Percent)
}

func (s *ReportingServiceTestSuite) TestRequestedUnitsMustExist() {
	_, err := s.svc.Reporting.GenerateFinancialSummary(s.ctx, domain.ReportParams{UnitIDs: []string{s.centro, "999"}})
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.svc.Unit.DeleteUnit(s.ctx, s.shopping, "")
	s.Require().NoError(err)
	_, err = s.svc.Reporting.GenerateFinancialSummary(s.ctx, domain.ReportParams{UnitIDs: []string{s.shopping}})
	s.ErrorIs(err, apperrors.ErrNotFound)

	summary, err := s.svc.Reporting.GenerateFinancialSummary(s.ctx, domain.ReportParams{})
	s.Require().NoError(err)
	s.Len(summary.ByUnit, 1)
}

func (s *ReportingServiceTestSuite) TestCustomPeriodValidation() {
	_, err := s.svc.Reporting.GenerateFinancialSummary(s.ctx, domain.ReportParams{Period: domain.PeriodCustom})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal("periodo", apperrors.FieldOf(err))

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = s.svc.Reporting.GenerateFinancialSummary(s.ctx, domain.ReportParams{Period: domain.PeriodCustom, StartDate: &start, EndDate: &end})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Reporting.GenerateFinancialSummary(s.ctx, domain.ReportParams{Period: "quinzena"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ReportingServiceTestSuite) TestTicketAverageByDay() {
	registerID := s.createRegister(s.centro)
	day1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	s.record(s.centro, registerID, entrada(domain.Pix, "10", "", day1))
	s.record(s.centro, registerID, entrada(domain.Pix, "30", "", day1))
	s.record(s.centro, registerID, entrada(domain.Pix, "30", "", day2))

	start, end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	report, err := s.svc.Reporting.GenerateTicketAverage(s.ctx, domain.ReportParams{
		Period: domain.PeriodCustom, StartDate: &start, EndDate: &end, ByUnit: true,
	})
	s.Require().NoError(err)

	s.Equal(domain.GranularityDay, report.Granularity)
	s.Require().Len(report.Overall.Buckets, 3)
	s.assertDecimal("20", report.Overall.Buckets[0].Average)
	s.Nil(report.Overall.Buckets[0].Trend)
	s.assertDecimal("30", report.Overall.Buckets[1].Average)
	s.Require().NotNil(report.Overall.Buckets[1].Trend)
	s.assertDecimal("50", *report.Overall.Buckets[1].Trend)
	s.assertDecimal("0", report.Overall.Buckets[2].Average)
	s.assertDecimal("23.33", report.Overall.Average)

	s.Require().Len(report.ByUnit, 2)
	s.Equal("Centro", report.ByUnit[0].UnitName)
	s.Equal(3, report.ByUnit[0].Count)
	s.Equal(0, report.ByUnit[1].Count)
}

func (s *ReportingServiceTestSuite) TestTicketAverageByMonthForLongPeriods() {
	report, err := s.svc.Reporting.GenerateTicketAverage(s.ctx, domain.ReportParams{Period: domain.PeriodYear})
	s.Require().NoError(err)
	s.Equal(domain.GranularityMonth, report.Granularity)
	s.Len(report.Overall.Buckets, 12)
	s.Nil(report.ByUnit)
}

func (s *ReportingServiceTestSuite) TestPendingPaymentsOldestFirst() {
	registerID := s.createRegister(s.centro)
	recent := s.record(s.centro, registerID, entrada(domain.Credito, "20", domain.Pendente, fixedNow.AddDate(0, 0, -1)))
	oldest := s.record(s.centro, registerID, entrada(domain.Ticket, "35", domain.Pendente, fixedNow.AddDate(0, 0, -10)))
	s.record(s.centro, registerID, entrada(domain.Pix, "99", domain.Realizado, fixedNow))

	report, err := s.svc.Reporting.GeneratePendingPayments(s.ctx, domain.ReportParams{Period: domain.PeriodMonth})
	s.Require().NoError(err)

	s.Equal(2, report.Count)
	s.assertDecimal("55", report.Total)
	s.Equal(oldest, report.Items[0].MovementID)
	s.Equal(10, report.Items[0].AgeDays)
	s.Equal("Centro", report.Items[0].UnitName)
	s.Equal(recent, report.Items[1].MovementID)
	s.Equal(1, report.Items[1].AgeDays)
}
