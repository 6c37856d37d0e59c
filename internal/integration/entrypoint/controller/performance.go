package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/application/usecase/performance"
	"github.com/sales-performance/backend/internal/domain/entity"
	domainerror "github.com/sales-performance/backend/internal/domain/error"
	"github.com/sales-performance/backend/internal/integration/entrypoint/dto"
)

// PerformanceController handles performance and commission endpoints.
type PerformanceController struct {
	getUseCase   *performance.GetPerformanceUseCase
	tiersUseCase *performance.ListTiersUseCase
	quoteUseCase *performance.QuoteCommissionUseCase
	clock        adapter.Clock
}

// NewPerformanceController creates a new performance controller instance.
func NewPerformanceController(
	getUseCase *performance.GetPerformanceUseCase,
	tiersUseCase *performance.ListTiersUseCase,
	quoteUseCase *performance.QuoteCommissionUseCase,
	clock adapter.Clock,
) *PerformanceController {
	return &PerformanceController{
		getUseCase:   getUseCase,
		tiersUseCase: tiersUseCase,
		quoteUseCase: quoteUseCase,
		clock:        clock,
	}
}

// Get handles GET /performance requests.
func (c *PerformanceController) Get(ctx *gin.Context) {
	window, err := parseWindow(ctx, c.clock)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), performance.GetPerformanceInput{Window: window})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPerformanceResponse(output))
}

// Tiers handles GET /commission/tiers requests.
func (c *PerformanceController) Tiers(ctx *gin.Context) {
	output, err := c.tiersUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTierListResponse(output.Tiers))
}

// Quote handles POST /commission/quote requests.
func (c *PerformanceController) Quote(ctx *gin.Context) {
	window, err := parseWindow(ctx, c.clock)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	// Parse request body
	var req dto.QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidQuote),
		})
		return
	}

	// Build input
	input := performance.QuoteCommissionInput{
		SaleAmount:     decimal.NewFromFloat(*req.SaleAmount),
		SaleType:       entity.SaleType(req.SaleType),
		NumberOfTours:  req.NumberOfTours,
		FDIGivenPoints: decimal.NewFromFloat(req.FDIGivenPoints),
		Window:         window,
	}
	if req.CumulativeVolume != nil {
		volume := decimal.NewFromFloat(*req.CumulativeVolume)
		input.PriorVolume = &volume
	}

	output, err := c.quoteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToQuoteResponse(output.Quote))
}
