// Package export contains the sales report export use case.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/aggregation"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

// ExportSalesInput represents the input for a sales report export.
type ExportSalesInput struct {
	Window valueobject.ReportingWindow
}

// ExportSalesOutput represents a rendered report ready for download.
type ExportSalesOutput struct {
	Filename    string
	ContentType string
	Content     []byte
	SaleCount   int
}

// ExportSalesUseCase renders the sales of a window and their totals.
type ExportSalesUseCase struct {
	saleRepo       adapter.SaleRepository
	exporter       adapter.SaleExporter
	clock          adapter.Clock
	filenamePrefix string
}

// NewExportSalesUseCase creates a new ExportSalesUseCase instance.
func NewExportSalesUseCase(
	saleRepo adapter.SaleRepository,
	exporter adapter.SaleExporter,
	clock adapter.Clock,
	filenamePrefix string,
) *ExportSalesUseCase {
	return &ExportSalesUseCase{
		saleRepo:       saleRepo,
		exporter:       exporter,
		clock:          clock,
		filenamePrefix: filenamePrefix,
	}
}

// Execute exports the filtered sales, cancelled ones included, followed by the window totals.
func (uc *ExportSalesUseCase) Execute(ctx context.Context, input ExportSalesInput) (*ExportSalesOutput, error) {
	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	now := uc.clock.Now()
	result := aggregation.Aggregate(sales, input.Window, now)

	var buf bytes.Buffer
	if err := uc.exporter.Export(&buf, result.Filtered, result.Totals); err != nil {
		return nil, fmt.Errorf("failed to export sales: %w", err)
	}

	filename := fmt.Sprintf("%s-%s-%s.%s",
		uc.filenamePrefix, input.Window.Kind(), now.Format("2006-01-02"), uc.exporter.Extension())

	slog.Info("Sales report exported", "filename", filename, "sales", len(result.Filtered))

	return &ExportSalesOutput{
		Filename:    filename,
		ContentType: uc.exporter.ContentType(),
		Content:     buf.Bytes(),
		SaleCount:   len(result.Filtered),
	}, nil
}
