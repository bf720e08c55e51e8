package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/SscSPs/caixa_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mov(t domain.MovementType, status domain.PaymentStatus, amount int64, form domain.PaymentForm, ts time.Time) domain.Movement {
	return domain.Movement{
		UnitID:        "001",
		Type:          t,
		PaymentStatus: status,
		Amount:        decimal.NewFromInt(amount),
		PaymentForm:   form,
		Timestamp:     ts,
		IsActive:      true,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var day = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestSummarizeMovements(t *testing.T) {
	movements := []domain.Movement{
		mov(domain.Entrada, domain.Realizado, 100, domain.Pix, day),
		mov(domain.Entrada, domain.Pendente, 50, domain.Credito, day),
		mov(domain.Saida, domain.Realizado, 30, domain.Dinheiro, day),
	}

	totals := accounting.SummarizeMovements(movements)

	assert.True(t, totals.Revenue.Equal(dec("100")))
	assert.True(t, totals.Expenses.Equal(dec("30")))
	assert.True(t, totals.Profit.Equal(dec("70")))
	assert.True(t, totals.Pending.Equal(dec("50")))
	assert.True(t, totals.ByPaymentForm[domain.Pix].Equal(dec("100")))
	assert.True(t, totals.ByPaymentForm[domain.Credito].IsZero())
	assert.Len(t, totals.ByPaymentForm, len(domain.PaymentForms))
}

func TestSummarizeMovementsEmpty(t *testing.T) {
	totals := accounting.SummarizeMovements(nil)

	assert.True(t, totals.Revenue.IsZero())
	assert.True(t, totals.Profit.IsZero())
	assert.Len(t, totals.ByPaymentForm, 5)
}

func TestMergeTotals(t *testing.T) {
	a := accounting.SummarizeMovements([]domain.Movement{mov(domain.Entrada, domain.Realizado, 10, domain.Pix, day)})
	b := accounting.SummarizeMovements([]domain.Movement{mov(domain.Saida, domain.Realizado, 4, domain.Dinheiro, day)})

	merged := accounting.MergeTotals(a, b)

	assert.True(t, merged.Profit.Equal(dec("6")))
	assert.True(t, merged.ByPaymentForm[domain.Pix].Equal(dec("10")))
}

func TestGroupSalesByPaymentForm(t *testing.T) {
	movements := []domain.Movement{
		mov(domain.Entrada, domain.Realizado, 25, domain.Dinheiro, day),
		mov(domain.Entrada, domain.Realizado, 75, domain.Pix, day),
		mov(domain.Entrada, domain.Pendente, 500, domain.Credito, day),
	}

	total, groups := accounting.GroupSalesByPaymentForm(movements)

	assert.True(t, total.Equal(dec("100")))
	require.Len(t, groups, 5)
	assert.Equal(t, domain.Pix, groups[0].PaymentForm)
	assert.True(t, groups[0].Percent.Equal(dec("75")))
	assert.Equal(t, domain.Dinheiro, groups[1].PaymentForm)
	assert.True(t, groups[1].Percent.Equal(dec("25")))
	assert.True(t, groups[2].Value.IsZero())
}

func TestGroupSalesByPaymentFormZeroRevenue(t *testing.T) {
	movements := []domain.Movement{mov(domain.Saida, domain.Realizado, 30, domain.Dinheiro, day)}

	total, groups := accounting.GroupSalesByPaymentForm(movements)

	assert.True(t, total.IsZero())
	for _, g := range groups {
		assert.True(t, g.Percent.IsZero(), "percent for %s", g.PaymentForm)
	}
}

func TestRankUnitSales(t *testing.T) {
	a := accounting.UnitSalesOf("001", "Centro", []domain.Movement{
		mov(domain.Entrada, domain.Realizado, 10, domain.Pix, day),
		mov(domain.Entrada, domain.Realizado, 20, domain.Pix, day),
	})
	b := accounting.UnitSalesOf("002", "Norte", []domain.Movement{
		mov(domain.Entrada, domain.Realizado, 90, domain.Debito, day),
		mov(domain.Entrada, domain.Pendente, 90, domain.Debito, day),
	})

	total, ranked := accounting.RankUnitSales([]domain.UnitSales{a, b})

	assert.True(t, total.Equal(dec("120")))
	require.Len(t, ranked, 2)
	assert.Equal(t, "002", ranked[0].UnitID)
	assert.Equal(t, 1, ranked[0].SalesCount)
	assert.True(t, ranked[0].Percent.Equal(dec("75")))
	assert.Equal(t, 2, ranked[1].SalesCount)
	assert.True(t, ranked[1].Percent.Equal(dec("25")))
}

func TestChooseGranularity(t *testing.T) {
	month := domain.DateRange{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), End: domain.EndOfDay(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))}
	year := domain.DateRange{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), End: domain.EndOfDay(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))}

	assert.Equal(t, domain.GranularityDay, accounting.ChooseGranularity(month))
	assert.Equal(t, domain.GranularityMonth, accounting.ChooseGranularity(year))
}

func TestTicketSeriesOf(t *testing.T) {
	d1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	r := domain.DateRange{Start: domain.StartOfDay(d1), End: domain.EndOfDay(d1.AddDate(0, 0, 2))}
	movements := []domain.Movement{
		mov(domain.Entrada, domain.Realizado, 10, domain.Pix, d1),
		mov(domain.Entrada, domain.Realizado, 30, domain.Pix, d1),
		mov(domain.Entrada, domain.Realizado, 30, domain.Dinheiro, d2),
		mov(domain.Saida, domain.Realizado, 99, domain.Dinheiro, d2),
	}

	series := accounting.TicketSeriesOf(movements, r, domain.GranularityDay)

	require.Len(t, series.Buckets, 3)
	assert.Equal(t, "2024-03-01", series.Buckets[0].Label)
	assert.True(t, series.Buckets[0].Average.Equal(dec("20")))
	assert.Nil(t, series.Buckets[0].Trend)

	require.NotNil(t, series.Buckets[1].Trend)
	assert.True(t, series.Buckets[1].Trend.Equal(dec("50")))

	// Previous average of 30 falls to an empty bucket.
	require.NotNil(t, series.Buckets[2].Trend)
	assert.True(t, series.Buckets[2].Trend.Equal(dec("-100")))

	assert.Equal(t, 3, series.Count)
	assert.True(t, series.Average.Equal(dec("23.33")))
}

func TestTicketSeriesTrendAfterEmptyBucket(t *testing.T) {
	d1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	r := domain.DateRange{Start: domain.StartOfDay(d1), End: domain.EndOfDay(d1.AddDate(0, 0, 1))}
	movements := []domain.Movement{mov(domain.Entrada, domain.Realizado, 10, domain.Pix, d1.AddDate(0, 0, 1))}

	series := accounting.TicketSeriesOf(movements, r, domain.GranularityDay)

	require.Len(t, series.Buckets, 2)
	assert.Nil(t, series.Buckets[1].Trend)
}

func TestTicketSeriesMonthly(t *testing.T) {
	r := domain.DateRange{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), End: domain.EndOfDay(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))}
	movements := []domain.Movement{mov(domain.Entrada, domain.Realizado, 10, domain.Pix, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))}

	series := accounting.TicketSeriesOf(movements, r, domain.GranularityMonth)

	require.Len(t, series.Buckets, 12)
	assert.Equal(t, "2024-05", series.Buckets[4].Label)
	assert.Equal(t, 1, series.Buckets[4].Count)
}

func TestAgeInDays(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, accounting.AgeInDays(now, now))
	assert.Equal(t, 1, accounting.AgeInDays(time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC), now))
	assert.Equal(t, 9, accounting.AgeInDays(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, accounting.AgeInDays(now.AddDate(0, 0, 2), now))
}

func TestPendingPaymentsOf(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	newer := mov(domain.Entrada, domain.Pendente, 40, domain.Credito, now.AddDate(0, 0, -1))
	older := mov(domain.Entrada, domain.Pendente, 60, domain.Pix, now.AddDate(0, 0, -5))
	settled := mov(domain.Entrada, domain.Realizado, 10, domain.Pix, now)

	total, items := accounting.PendingPaymentsOf([]domain.Movement{newer, settled, older}, map[string]string{"001": "Centro"}, now)

	assert.True(t, total.Equal(dec("100")))
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].AgeDays)
	assert.Equal(t, "Centro", items[0].UnitName)
	assert.Equal(t, 1, items[1].AgeDays)
}
