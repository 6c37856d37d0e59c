package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/sales-performance/backend/internal/domain/error"
	"github.com/sales-performance/backend/internal/integration/entrypoint/dto"
)

// handleDomainError writes the HTTP response for an error returned by a use case.
func handleDomainError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		ctx.JSON(getStatusCodeForSaleError(saleErr.Code), dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
		})
		return
	}

	var perfErr *domainerror.PerformanceError
	if errors.As(err, &perfErr) {
		ctx.JSON(getStatusCodeForPerformanceError(perfErr.Code), dto.ErrorResponse{
			Error: perfErr.Message,
			Code:  string(perfErr.Code),
		})
		return
	}

	// Generic server error
	slog.Error("Unhandled request error", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidSaleType,
		domainerror.ErrCodeInvalidSaleDate,
		domainerror.ErrCodeInvalidSaleAmount,
		domainerror.ErrCodeInvalidTourCount,
		domainerror.ErrCodeInvalidGivenPoints,
		domainerror.ErrCodeClientNameRequired,
		domainerror.ErrCodeClientNameTooLong,
		domainerror.ErrCodeSaleNotesTooLong,
		domainerror.ErrCodeMissingSaleFields,
		domainerror.ErrCodeInvalidSaleID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForPerformanceError maps performance error codes to HTTP status codes.
func getStatusCodeForPerformanceError(code domainerror.PerformanceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReportingRange,
		domainerror.ErrCodeInvalidWindowDays,
		domainerror.ErrCodeInvalidStartDate,
		domainerror.ErrCodeInvalidQuote:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
