// Package error defines domain-specific errors for the Operations Tracker application.
package error

import "errors"

// Report domain errors.
var (
	// ErrMissingDate is returned when a required date is not provided.
	ErrMissingDate = errors.New("date is required")

	// ErrMissingMonth is returned when a required month is not provided.
	ErrMissingMonth = errors.New("month is required (format: YYYY-MM)")

	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateFormat is returned when a date cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidMonthFormat is returned when a month cannot be parsed.
	ErrInvalidMonthFormat = errors.New("invalid month format, expected YYYY-MM")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidReportKind is returned for an unknown report kind selector.
	ErrInvalidReportKind = errors.New("invalid report kind")
)

// ReportErrorCode defines error codes for report errors.
// Format: REP-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingDate        ReportErrorCode = "REP-010001"
	ErrCodeMissingMonth       ReportErrorCode = "REP-010002"
	ErrCodeMissingStartDate   ReportErrorCode = "REP-010003"
	ErrCodeMissingEndDate     ReportErrorCode = "REP-010004"
	ErrCodeInvalidDateFormat  ReportErrorCode = "REP-010005"
	ErrCodeInvalidMonthFormat ReportErrorCode = "REP-010006"
	ErrCodeInvalidDateRange   ReportErrorCode = "REP-010007"
	ErrCodeInvalidReportKind  ReportErrorCode = "REP-010008"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "REP-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
