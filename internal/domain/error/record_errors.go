// Package error defines domain-specific errors for the Operations Tracker application.
package error

import "errors"

// Record domain errors, shared by the expense, product, production and sale areas.
var (
	// ErrMissingDescription is returned when an expense description is empty.
	ErrMissingDescription = errors.New("description is required")

	// ErrNegativeAmount is returned when an expense amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrMissingProductName is returned when a product name is empty.
	ErrMissingProductName = errors.New("product name is required")

	// ErrInvalidProductType is returned when a product type is not recognized.
	ErrInvalidProductType = errors.New("product type must be 'manufactured' or 'resale'")

	// ErrProductNotFound is returned when a referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNotOwned is returned when a referenced product belongs to another business.
	ErrProductNotOwned = errors.New("product does not belong to this business")

	// ErrNonPositiveQuantity is returned when a quantity is zero or negative.
	ErrNonPositiveQuantity = errors.New("quantity must be a positive integer")

	// ErrNonPositivePrice is returned when a unit price or unit cost is not positive.
	ErrNonPositivePrice = errors.New("unit price must be positive")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingDescription  RecordErrorCode = "REC-010001"
	ErrCodeNegativeAmount      RecordErrorCode = "REC-010002"
	ErrCodeMissingProductName  RecordErrorCode = "REC-010003"
	ErrCodeInvalidProductType  RecordErrorCode = "REC-010004"
	ErrCodeNonPositiveQuantity RecordErrorCode = "REC-010005"
	ErrCodeNonPositivePrice    RecordErrorCode = "REC-010006"
	ErrCodeRecordMissingDate   RecordErrorCode = "REC-010007"
	ErrCodeRecordInvalidDate   RecordErrorCode = "REC-010008"

	// Reference errors (02XXXX)
	ErrCodeProductNotFound RecordErrorCode = "REC-020001"
	ErrCodeProductNotOwned RecordErrorCode = "REC-020002"

	// Internal errors (99XXXX)
	ErrCodeRecordInternalError RecordErrorCode = "REC-990001"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
