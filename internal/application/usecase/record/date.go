// Package record contains the use cases that create and list the raw
// operational records: products, expenses, production batches and sales.
package record

import (
	"time"

	domainerror "github.com/ops-tracker/backend/internal/domain/error"
)

// dateLayout is the wire format for record dates.
const dateLayout = "2006-01-02"

// parseDate parses a required YYYY-MM-DD record date.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, domainerror.NewRecordError(
			domainerror.ErrCodeRecordMissingDate,
			"date is required",
			domainerror.ErrMissingDate,
		)
	}
	date, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInvalidDate,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}
	return date, nil
}
