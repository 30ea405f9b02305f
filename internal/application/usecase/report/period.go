// Package report contains the report aggregation use cases.
package report

import (
	"time"

	domainerror "github.com/ops-tracker/backend/internal/domain/error"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// MonthLayout is the wire format for year-months.
	MonthLayout = "2006-01"
)

// Period is an inclusive [start, end] calendar date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days covered by the period.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// WeekBounds returns the Monday..Sunday period containing ref.
// Weekday numbering has Sunday as 0, so a Sunday reference maps
// back six days to the Monday that opened its week.
func WeekBounds(ref time.Time) Period {
	back := int(ref.Weekday()) - 1
	if ref.Weekday() == time.Sunday {
		back = 6
	}
	monday := time.Date(ref.Year(), ref.Month(), ref.Day()-back, 0, 0, 0, 0, time.UTC)
	return Period{Start: monday, End: monday.AddDate(0, 0, 6)}
}

// MonthBounds returns the first..last-day period of the given month and
// the number of days in it. The last day is "day 0 of the next month",
// which handles every month length including leap-year February.
func MonthBounds(year int, month time.Month) (Period, int) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return Period{Start: first, End: last}, last.Day()
}

// ParseDate parses a required YYYY-MM-DD date input.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, domainerror.NewReportError(
			domainerror.ErrCodeMissingDate,
			"date is required",
			domainerror.ErrMissingDate,
		)
	}
	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateFormat,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}
	return date, nil
}

// ParseMonth parses a required YYYY-MM month input.
func ParseMonth(value string) (int, time.Month, error) {
	if value == "" {
		return 0, 0, domainerror.NewReportError(
			domainerror.ErrCodeMissingMonth,
			"month is required (format: YYYY-MM)",
			domainerror.ErrMissingMonth,
		)
	}
	parsed, err := time.ParseInLocation(MonthLayout, value, time.UTC)
	if err != nil {
		return 0, 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthFormat,
			"invalid month format, expected YYYY-MM",
			domainerror.ErrInvalidMonthFormat,
		)
	}
	return parsed.Year(), parsed.Month(), nil
}

// ParseRange parses required start/end date inputs into a Period.
func ParseRange(startValue, endValue string) (Period, error) {
	if startValue == "" {
		return Period{}, domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if endValue == "" {
		return Period{}, domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	start, err := ParseDate(startValue)
	if err != nil {
		return Period{}, err
	}
	end, err := ParseDate(endValue)
	if err != nil {
		return Period{}, err
	}

	if end.Before(start) {
		return Period{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return Period{Start: start, End: end}, nil
}
