// Package error defines domain-specific errors for the Sales Performance application.
package error

import "errors"

// Performance domain errors.
var (
	// ErrInvalidReportingRange is returned when the range is not monthly, 45day or 90day.
	ErrInvalidReportingRange = errors.New("range must be: monthly, 45day, or 90day")

	// ErrInvalidWindowDays is returned when a rolling window is not 45 or 90 days long.
	ErrInvalidWindowDays = errors.New("rolling window must span 45 or 90 days")

	// ErrInvalidStartDate is returned when start_date is not a valid date.
	ErrInvalidStartDate = errors.New("invalid start_date format, expected YYYY-MM-DD")

	// ErrInvalidQuoteAmount is returned when a commission quote has a negative amount or volume.
	ErrInvalidQuoteAmount = errors.New("quote amounts must not be negative")
)

// PerformanceErrorCode defines error codes for performance errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type PerformanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportingRange PerformanceErrorCode = "PRF-010001"
	ErrCodeInvalidWindowDays     PerformanceErrorCode = "PRF-010002"
	ErrCodeInvalidStartDate      PerformanceErrorCode = "PRF-010003"
	ErrCodeInvalidQuote          PerformanceErrorCode = "PRF-010004"

	// Internal errors (99XXXX)
	ErrCodePerformanceInternalError PerformanceErrorCode = "PRF-990001"
)

// PerformanceError represents a performance error with code and message.
type PerformanceError struct {
	Code    PerformanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PerformanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PerformanceError) Unwrap() error {
	return e.Err
}

// NewPerformanceError creates a new PerformanceError with the given code and message.
func NewPerformanceError(code PerformanceErrorCode, message string, err error) *PerformanceError {
	return &PerformanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
