package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/aggregation"
	"github.com/sales-performance/backend/internal/domain/entity"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

// ListSalesInput represents the input for listing sales.
type ListSalesInput struct {
	Window valueobject.ReportingWindow
}

// ListSalesOutput represents the sales of a reporting window and their totals.
type ListSalesOutput struct {
	Sales       []*entity.Sale // Active and cancelled sales inside the window
	Totals      entity.SalesTotals
	WindowKind  valueobject.WindowKind
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// ListSalesUseCase handles sale listing logic.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
	clock    adapter.Clock
	metrics  adapter.MetricsRecorder
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(
	saleRepo adapter.SaleRepository,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
		clock:    clock,
		metrics:  metrics,
	}
}

// Execute returns the window's sales in insertion order with freshly computed totals.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	now := uc.clock.Now()
	result := aggregation.Aggregate(sales, input.Window, now)
	uc.metrics.TotalsComputed(input.Window.Kind(), result.Totals)

	start, end := input.Window.Bounds(now)

	return &ListSalesOutput{
		Sales:       result.Filtered,
		Totals:      result.Totals,
		WindowKind:  input.Window.Kind(),
		PeriodStart: start,
		PeriodEnd:   end,
	}, nil
}
