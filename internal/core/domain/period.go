package domain

import (
	"errors"
	"time"
)

// ErrInvalidPeriod is returned when a report period cannot be resolved.
var ErrInvalidPeriod = errors.New("invalid report period")

// PeriodKind names the report periods callers can ask for.
type PeriodKind string

const (
	PeriodDay    PeriodKind = "dia"
	PeriodWeek   PeriodKind = "semana"
	PeriodMonth  PeriodKind = "mes"
	PeriodYear   PeriodKind = "ano"
	PeriodCustom PeriodKind = "personalizado"
)

// DateRange is an inclusive [Start, End] pair of UTC instants.
type DateRange struct {
	Start time.Time `json:"inicio"`
	End   time.Time `json:"fim"`
}

// Contains reports whether t falls inside the range, both ends included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days returns the number of calendar days the range touches.
func (r DateRange) Days() int {
	return int(StartOfDay(r.End).Sub(StartOfDay(r.Start)).Hours()/24) + 1
}

// All day boundaries are computed in UTC.

// StartOfDay returns 00:00:00.000 UTC of t's UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's UTC calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DayRange returns the inclusive range covering t's UTC calendar day.
func DayRange(t time.Time) DateRange {
	return DateRange{Start: StartOfDay(t), End: EndOfDay(t)}
}

// ResolvePeriod turns a period kind into an inclusive UTC range relative to now.
// An empty kind means the current month.
func ResolvePeriod(kind PeriodKind, startDate, endDate *time.Time, now time.Time) (DateRange, error) {
	today := StartOfDay(now)
	switch kind {
	case PeriodDay:
		return DayRange(today), nil
	case PeriodWeek:
		// ISO week, Monday first.
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return DateRange{Start: start, End: EndOfDay(start.AddDate(0, 0, 6))}, nil
	case PeriodMonth, "":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}, nil
	case PeriodYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}, nil
	case PeriodCustom:
		if startDate == nil || endDate == nil {
			return DateRange{}, errors.Join(ErrInvalidPeriod, errors.New("dataInicio e dataFim são obrigatórias"))
		}
		r := DateRange{Start: StartOfDay(*startDate), End: EndOfDay(*endDate)}
		if r.End.Before(r.Start) {
			return DateRange{}, errors.Join(ErrInvalidPeriod, errors.New("dataInicio posterior a dataFim"))
		}
		return r, nil
	default:
		return DateRange{}, errors.Join(ErrInvalidPeriod, errors.New("período desconhecido: "+string(kind)))
	}
}
