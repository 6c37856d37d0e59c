// Package error defines domain-specific errors for the Sales Performance application.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found in the session.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInvalidSaleType is returned when the sale type is neither DEED nor TRUST.
	ErrInvalidSaleType = errors.New("invalid sale type")

	// ErrInvalidSaleDate is returned when the sale date is missing or malformed.
	ErrInvalidSaleDate = errors.New("invalid sale date")

	// ErrInvalidSaleAmount is returned when the sale amount is negative.
	ErrInvalidSaleAmount = errors.New("invalid sale amount")

	// ErrInvalidTourCount is returned when the number of tours is negative.
	ErrInvalidTourCount = errors.New("invalid number of tours")

	// ErrInvalidGivenPoints is returned when the FDI given points are negative.
	ErrInvalidGivenPoints = errors.New("invalid FDI given points")

	// ErrClientNameRequired is returned when the client last name is empty.
	ErrClientNameRequired = errors.New("client last name is required")

	// ErrClientNameTooLong is returned when the client last name exceeds the maximum length.
	ErrClientNameTooLong = errors.New("client last name too long")

	// ErrSaleNotesTooLong is returned when the sale notes exceed the maximum length.
	ErrSaleNotesTooLong = errors.New("notes too long")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSaleType    SaleErrorCode = "SAL-010001"
	ErrCodeInvalidSaleDate    SaleErrorCode = "SAL-010002"
	ErrCodeInvalidSaleAmount  SaleErrorCode = "SAL-010003"
	ErrCodeInvalidTourCount   SaleErrorCode = "SAL-010004"
	ErrCodeInvalidGivenPoints SaleErrorCode = "SAL-010005"
	ErrCodeClientNameRequired SaleErrorCode = "SAL-010006"
	ErrCodeClientNameTooLong  SaleErrorCode = "SAL-010007"
	ErrCodeSaleNotesTooLong   SaleErrorCode = "SAL-010008"
	ErrCodeMissingSaleFields  SaleErrorCode = "SAL-010009"
	ErrCodeInvalidSaleID      SaleErrorCode = "SAL-010010"

	// Lookup errors (02XXXX)
	ErrCodeSaleNotFound SaleErrorCode = "SAL-020001"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
