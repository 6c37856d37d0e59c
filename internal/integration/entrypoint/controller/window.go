package controller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sales-performance/backend/internal/application/adapter"
	domainerror "github.com/sales-performance/backend/internal/domain/error"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

const dateLayout = "2006-01-02"

// parseWindow reads the range and start_date query parameters.
// The range defaults to the current month and start_date to today.
func parseWindow(ctx *gin.Context, clock adapter.Clock) (valueobject.ReportingWindow, error) {
	anchor := clock.Now()
	if raw := ctx.Query("start_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, domainerror.NewPerformanceError(
				domainerror.ErrCodeInvalidStartDate,
				"start_date must be formatted as YYYY-MM-DD",
				domainerror.ErrInvalidStartDate,
			)
		}
		anchor = parsed
	}

	window, err := valueobject.ParseReportingWindow(ctx.Query("range"), anchor)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidWindowDays) {
			return nil, domainerror.NewPerformanceError(domainerror.ErrCodeInvalidWindowDays, err.Error(), err)
		}
		return nil, domainerror.NewPerformanceError(
			domainerror.ErrCodeInvalidReportingRange,
			"range must be one of: monthly, 45day, 90day",
			err,
		)
	}
	return window, nil
}

// parseSaleID reads the :id path parameter.
func parseSaleID(ctx *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, domainerror.NewSaleError(domainerror.ErrCodeInvalidSaleID, "invalid sale ID format", err)
	}
	return id, nil
}
