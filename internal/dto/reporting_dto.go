package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
)

// DateLayout is the calendar-date format accepted in query strings.
const DateLayout = "2006-01-02"

// ReportQuery defines the query parameters shared by every report.
type ReportQuery struct {
	Period    string `form:"periodo"`
	StartDate string `form:"dataInicio"`
	EndDate   string `form:"dataFim"`
	Units     string `form:"unidades"` // comma separated unit ids
	ByUnit    bool   `form:"porUnidade"`
}

// ToReportParams parses the query into domain report parameters.
func (q ReportQuery) ToReportParams() (domain.ReportParams, error) {
	params := domain.ReportParams{
		Period: domain.PeriodKind(strings.TrimSpace(q.Period)),
		ByUnit: q.ByUnit,
	}
	var err error
	if params.StartDate, err = ParseDate("dataInicio", q.StartDate); err != nil {
		return domain.ReportParams{}, err
	}
	if params.EndDate, err = ParseDate("dataFim", q.EndDate); err != nil {
		return domain.ReportParams{}, err
	}
	for _, id := range strings.Split(q.Units, ",") {
		if id = strings.TrimSpace(id); id != "" {
			params.UnitIDs = append(params.UnitIDs, id)
		}
	}
	return params, nil
}

// ParseDate parses an optional YYYY-MM-DD value as a UTC date.
func ParseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "data inválida, use AAAA-MM-DD")
	}
	return &t, nil
}
