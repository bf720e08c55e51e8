package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Aggregations here are pure: they never mutate their input and an empty
// movement set yields zero totals and empty groups.

var hundred = decimal.NewFromInt(100)

// Percent returns part/total*100 rounded to two places, or zero when total is zero.
func Percent(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(2)
}

// Average returns total/count rounded to two places, or zero when count is zero.
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// Trend returns the relative change from previous to current in percent.
// It is nil when previous is zero.
func Trend(current, previous decimal.Decimal) *decimal.Decimal {
	if previous.IsZero() {
		return nil
	}
	t := current.Sub(previous).Div(previous).Mul(hundred).Round(2)
	return &t
}

// emptyByPaymentForm returns a breakdown with every payment form present at zero.
func emptyByPaymentForm() map[domain.PaymentForm]decimal.Decimal {
	m := make(map[domain.PaymentForm]decimal.Decimal, len(domain.PaymentForms))
	for _, f := range domain.PaymentForms {
		m[f] = decimal.Zero
	}
	return m
}

// SummarizeMovements classifies movements into revenue (entrada+realizado), pending
// (entrada+pendente) and expenses (saida). Only revenue counts toward the payment-form breakdown.
func SummarizeMovements(movements []domain.Movement) domain.FinancialTotals {
	totals := domain.FinancialTotals{
		Revenue:       decimal.Zero,
		Expenses:      decimal.Zero,
		Pending:       decimal.Zero,
		ByPaymentForm: emptyByPaymentForm(),
	}
	for _, m := range movements {
		switch {
		case m.IsRevenue():
			totals.Revenue = totals.Revenue.Add(m.Amount)
			if _, ok := totals.ByPaymentForm[m.PaymentForm]; ok {
				totals.ByPaymentForm[m.PaymentForm] = totals.ByPaymentForm[m.PaymentForm].Add(m.Amount)
			}
		case m.IsPending():
			totals.Pending = totals.Pending.Add(m.Amount)
		case m.IsExpense():
			totals.Expenses = totals.Expenses.Add(m.Amount)
		}
	}
	totals.Profit = totals.Revenue.Sub(totals.Expenses)
	return totals
}

// MergeTotals adds b into a copy of a.
func MergeTotals(a, b domain.FinancialTotals) domain.FinancialTotals {
	out := domain.FinancialTotals{
		Revenue:       a.Revenue.Add(b.Revenue),
		Expenses:      a.Expenses.Add(b.Expenses),
		Pending:       a.Pending.Add(b.Pending),
		ByPaymentForm: emptyByPaymentForm(),
	}
	for _, f := range domain.PaymentForms {
		out.ByPaymentForm[f] = a.ByPaymentForm[f].Add(b.ByPaymentForm[f])
	}
	out.Profit = out.Revenue.Sub(out.Expenses)
	return out
}

// GroupSalesByPaymentForm returns one group per payment form, largest value first.
// Ties keep the canonical payment form order.
func GroupSalesByPaymentForm(movements []domain.Movement) (decimal.Decimal, []domain.PaymentFormSales) {
	totals := SummarizeMovements(movements)
	groups := make([]domain.PaymentFormSales, 0, len(domain.PaymentForms))
	for _, f := range domain.PaymentForms {
		groups = append(groups, domain.PaymentFormSales{
			PaymentForm: f,
			Value:       totals.ByPaymentForm[f],
			Percent:     Percent(totals.ByPaymentForm[f], totals.Revenue),
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Value.GreaterThan(groups[j].Value)
	})
	return totals.Revenue, groups
}

// UnitSalesOf sums the settled revenue of one unit's movements.
func UnitSalesOf(unitID, unitName string, movements []domain.Movement) domain.UnitSales {
	sales := domain.UnitSales{UnitID: unitID, UnitName: unitName, TotalSales: decimal.Zero, Percent: decimal.Zero}
	for _, m := range movements {
		if m.IsRevenue() {
			sales.TotalSales = sales.TotalSales.Add(m.Amount)
			sales.SalesCount++
		}
	}
	return sales
}

// RankUnitSales fills in each unit's share of the grand total and sorts largest first.
// Ties keep the input order.
func RankUnitSales(units []domain.UnitSales) (decimal.Decimal, []domain.UnitSales) {
	total := decimal.Zero
	for _, u := range units {
		total = total.Add(u.TotalSales)
	}
	ranked := make([]domain.UnitSales, len(units))
	for i, u := range units {
		u.Percent = Percent(u.TotalSales, total)
		ranked[i] = u
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSales.GreaterThan(ranked[j].TotalSales)
	})
	return total, ranked
}

// ChooseGranularity buckets by day for periods up to 31 days and by month otherwise.
func ChooseGranularity(r domain.DateRange) domain.Granularity {
	if r.Days() <= 31 {
		return domain.GranularityDay
	}
	return domain.GranularityMonth
}

func bucketStart(t time.Time, g domain.Granularity) time.Time {
	t = t.UTC()
	if g == domain.GranularityMonth {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return domain.StartOfDay(t)
}

func nextBucket(t time.Time, g domain.Granularity) time.Time {
	if g == domain.GranularityMonth {
		return t.AddDate(0, 1, 0)
	}
	return t.AddDate(0, 0, 1)
}

func bucketLabel(t time.Time, g domain.Granularity) string {
	if g == domain.GranularityMonth {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

// TicketSeriesOf buckets settled revenue across the whole range, empty buckets included,
// and computes each bucket's ticket average and its trend against the previous bucket.
func TicketSeriesOf(movements []domain.Movement, r domain.DateRange, g domain.Granularity) domain.TicketSeries {
	series := domain.TicketSeries{Total: decimal.Zero, Average: decimal.Zero}
	index := make(map[string]int)
	for start := bucketStart(r.Start, g); !start.After(r.End); start = nextBucket(start, g) {
		index[bucketLabel(start, g)] = len(series.Buckets)
		series.Buckets = append(series.Buckets, domain.TicketBucket{
			Label:   bucketLabel(start, g),
			Start:   start,
			Total:   decimal.Zero,
			Average: decimal.Zero,
		})
	}

	for _, m := range movements {
		if !m.IsRevenue() || !r.Contains(m.Timestamp) {
			continue
		}
		i, ok := index[bucketLabel(bucketStart(m.Timestamp, g), g)]
		if !ok {
			continue
		}
		series.Buckets[i].Total = series.Buckets[i].Total.Add(m.Amount)
		series.Buckets[i].Count++
		series.Total = series.Total.Add(m.Amount)
		series.Count++
	}

	for i := range series.Buckets {
		b := &series.Buckets[i]
		b.Average = Average(b.Total, b.Count)
		if i > 0 {
			b.Trend = Trend(b.Average, series.Buckets[i-1].Average)
		}
	}
	series.Average = Average(series.Total, series.Count)
	return series
}

// AgeInDays is the number of whole UTC calendar days from ts to now, never negative.
func AgeInDays(ts, now time.Time) int {
	days := int(domain.StartOfDay(now).Sub(domain.StartOfDay(ts)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// PendingPaymentsOf selects pending entrada movements, oldest first, with their age.
// unitNames maps unit ids to display names.
func PendingPaymentsOf(movements []domain.Movement, unitNames map[string]string, now time.Time) (decimal.Decimal, []domain.PendingPayment) {
	total := decimal.Zero
	items := make([]domain.PendingPayment, 0)
	for _, m := range movements {
		if !m.IsPending() {
			continue
		}
		total = total.Add(m.Amount)
		items = append(items, domain.PendingPayment{
			Movement: m,
			UnitName: unitNames[m.UnitID],
			AgeDays:  AgeInDays(m.Timestamp, now),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.Before(items[j].Timestamp)
	})
	return total, items
}
