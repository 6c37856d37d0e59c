package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/application/usecase/sale"
	"github.com/sales-performance/backend/internal/domain/entity"
	domainerror "github.com/sales-performance/backend/internal/domain/error"
	"github.com/sales-performance/backend/internal/integration/entrypoint/dto"
)

// SaleController handles sale endpoints.
type SaleController struct {
	listUseCase        *sale.ListSalesUseCase
	recordUseCase      *sale.RecordSaleUseCase
	updateUseCase      *sale.UpdateSaleUseCase
	deleteUseCase      *sale.DeleteSaleUseCase
	cancelUseCase      *sale.ToggleCancellationUseCase
	updateNotesUseCase *sale.UpdateNotesUseCase
	clock              adapter.Clock
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	listUseCase *sale.ListSalesUseCase,
	recordUseCase *sale.RecordSaleUseCase,
	updateUseCase *sale.UpdateSaleUseCase,
	deleteUseCase *sale.DeleteSaleUseCase,
	cancelUseCase *sale.ToggleCancellationUseCase,
	updateNotesUseCase *sale.UpdateNotesUseCase,
	clock adapter.Clock,
) *SaleController {
	return &SaleController{
		listUseCase:        listUseCase,
		recordUseCase:      recordUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		cancelUseCase:      cancelUseCase,
		updateNotesUseCase: updateNotesUseCase,
		clock:              clock,
	}
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	window, err := parseWindow(ctx, c.clock)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), sale.ListSalesInput{Window: window})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.SaleListResponse{
		Range:       string(output.WindowKind),
		PeriodStart: output.PeriodStart.Format(dateLayout),
		PeriodEnd:   output.PeriodEnd.Format(dateLayout),
		Sales:       dto.ToSaleResponses(output.Sales),
		Totals:      dto.ToTotalsResponse(output.Totals),
	})
}

// Create handles POST /sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	window, err := parseWindow(ctx, c.clock)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	// Parse request body
	fields, ok := bindSaleFields(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.recordUseCase.Execute(ctx.Request.Context(), sale.RecordSaleInput{
		SaleFields: fields,
		Window:     window,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// Update handles PUT /sales/:id requests.
func (c *SaleController) Update(ctx *gin.Context) {
	id, err := parseSaleID(ctx)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	window, err := parseWindow(ctx, c.clock)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	// Parse request body
	fields, ok := bindSaleFields(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), sale.UpdateSaleInput{
		ID:         id,
		SaleFields: fields,
		Window:     window,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Delete handles DELETE /sales/:id requests.
func (c *SaleController) Delete(ctx *gin.Context) {
	id, err := parseSaleID(ctx)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), sale.DeleteSaleInput{ID: id}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleCancel handles POST /sales/:id/cancel requests.
func (c *SaleController) ToggleCancel(ctx *gin.Context) {
	id, err := parseSaleID(ctx)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), sale.ToggleCancellationInput{ID: id})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// UpdateNotes handles PATCH /sales/:id/notes requests.
func (c *SaleController) UpdateNotes(ctx *gin.Context) {
	id, err := parseSaleID(ctx)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	var req dto.UpdateNotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}

	output, err := c.updateNotesUseCase.Execute(ctx.Request.Context(), sale.UpdateNotesInput{
		ID:    id,
		Notes: req.Notes,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// bindSaleFields parses a SaleRequest body. It writes the error response itself
// and reports false when the body is unusable.
func bindSaleFields(ctx *gin.Context) (sale.SaleFields, bool) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return sale.SaleFields{}, false
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidSaleDate),
		})
		return sale.SaleFields{}, false
	}

	return sale.SaleFields{
		Date:           date,
		ClientLastName: req.ClientLastName,
		NumberOfTours:  req.NumberOfTours,
		ManagerName:    req.ManagerName,
		SaleAmount:     decimal.NewFromFloat(*req.SaleAmount),
		SaleType:       entity.SaleType(req.SaleType),
		Notes:          req.Notes,
		LeadNumber:     req.LeadNumber,
		FDI:            req.FDI,
		FDIGivenPoints: decimal.NewFromFloat(req.FDIGivenPoints),
	}, true
}
