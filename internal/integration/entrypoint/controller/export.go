package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/application/usecase/export"
)

// ExportController handles report download endpoints.
type ExportController struct {
	exportUseCase *export.ExportSalesUseCase
	clock         adapter.Clock
}

// NewExportController creates a new export controller instance.
func NewExportController(exportUseCase *export.ExportSalesUseCase, clock adapter.Clock) *ExportController {
	return &ExportController{
		exportUseCase: exportUseCase,
		clock:         clock,
	}
}

// Download handles GET /export requests.
func (c *ExportController) Download(ctx *gin.Context) {
	window, err := parseWindow(ctx, c.clock)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportSalesInput{Window: window})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Header("X-Sale-Count", strconv.Itoa(output.SaleCount))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}
