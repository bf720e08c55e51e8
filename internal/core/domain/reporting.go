package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportParams scopes a report. Empty UnitIDs means every active unit.
// A zero Now means the service clock.
type ReportParams struct {
	Period    PeriodKind
	StartDate *time.Time
	EndDate   *time.Time
	UnitIDs   []string
	ByUnit    bool
	Now       time.Time
}

// FinancialTotals is the revenue/expense roll-up of a movement set.
// Profit is always derived, never stored.
type FinancialTotals struct {
	Revenue       decimal.Decimal                 `json:"receitas"`
	Expenses      decimal.Decimal                 `json:"despesas"`
	Profit        decimal.Decimal                 `json:"lucro"`
	Pending       decimal.Decimal                 `json:"valoresPendentes"`
	ByPaymentForm map[PaymentForm]decimal.Decimal `json:"porFormaPagamento"`
}

// UnitFinancialSummary is the per-unit slice of a financial summary.
type UnitFinancialSummary struct {
	UnitID   string `json:"unidadeId"`
	UnitName string `json:"nome"`
	FinancialTotals
}

// FinancialSummary is the consolidated summary over every unit in scope.
type FinancialSummary struct {
	Period DateRange `json:"periodo"`
	FinancialTotals
	ByUnit []UnitFinancialSummary `json:"porUnidade"`
}

// PaymentFormSales is one group of the sales-by-payment-method report.
type PaymentFormSales struct {
	PaymentForm PaymentForm     `json:"formaPagamento"`
	Value       decimal.Decimal `json:"valor"`
	Percent     decimal.Decimal `json:"percentual"`
}

// SalesByPaymentMethod groups settled revenue by payment form, largest first.
type SalesByPaymentMethod struct {
	Period DateRange          `json:"periodo"`
	Total  decimal.Decimal    `json:"total"`
	Groups []PaymentFormSales `json:"formas"`
}

// UnitSales is one group of the sales-by-unit report.
type UnitSales struct {
	UnitID     string          `json:"unidadeId"`
	UnitName   string          `json:"nome"`
	TotalSales decimal.Decimal `json:"totalVendas"`
	SalesCount int             `json:"quantidadeVendas"`
	Percent    decimal.Decimal `json:"percentual"`
}

// SalesByUnit groups settled revenue by unit, largest first.
type SalesByUnit struct {
	Period DateRange       `json:"periodo"`
	Total  decimal.Decimal `json:"total"`
	Units  []UnitSales     `json:"unidades"`
}

// Granularity of ticket-average buckets.
type Granularity string

const (
	GranularityDay   Granularity = "dia"
	GranularityMonth Granularity = "mes"
)

// TicketBucket is the ticket average of one time bucket. Trend is nil when there is
// no previous bucket or the previous average is zero.
type TicketBucket struct {
	Label   string           `json:"periodo"`
	Start   time.Time        `json:"inicio"`
	Total   decimal.Decimal  `json:"total"`
	Count   int              `json:"quantidade"`
	Average decimal.Decimal  `json:"ticketMedio"`
	Trend   *decimal.Decimal `json:"tendencia"`
}

// TicketSeries is a bucketed ticket-average series, overall or for one unit.
type TicketSeries struct {
	UnitID   string          `json:"unidadeId,omitempty"`
	UnitName string          `json:"nome,omitempty"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"quantidade"`
	Average  decimal.Decimal `json:"ticketMedio"`
	Buckets  []TicketBucket  `json:"series"`
}

// TicketAverage is the ticket-average report.
type TicketAverage struct {
	Period      DateRange      `json:"periodo"`
	Granularity Granularity    `json:"granularidade"`
	Overall     TicketSeries   `json:"geral"`
	ByUnit      []TicketSeries `json:"porUnidade,omitempty"`
}

// PendingPayment is an entrada movement still awaiting payment.
type PendingPayment struct {
	Movement
	UnitName string `json:"unidadeNome"`
	AgeDays  int    `json:"diasEmAberto"`
}

// PendingPayments lists pending movements, oldest first.
type PendingPayments struct {
	Period DateRange        `json:"periodo"`
	Total  decimal.Decimal  `json:"total"`
	Count  int              `json:"quantidade"`
	Items  []PendingPayment `json:"pagamentos"`
}
