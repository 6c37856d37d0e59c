// Package performance contains reporting and commission use cases.
package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/aggregation"
	"github.com/sales-performance/backend/internal/domain/commission"
	"github.com/sales-performance/backend/internal/domain/entity"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

// GetPerformanceInput represents the input for a performance summary.
type GetPerformanceInput struct {
	Window valueobject.ReportingWindow
}

// GetPerformanceOutput represents the totals of a window and the tier progress they reach.
type GetPerformanceOutput struct {
	Totals               entity.SalesTotals
	WindowKind           valueobject.WindowKind
	PeriodStart          time.Time
	PeriodEnd            time.Time
	CurrentTier          *entity.CommissionTier // nil below the first tier
	AdditionalCommission decimal.Decimal
	NextTier             *entity.CommissionTier // nil once the top tier is reached
	VolumeToNextTier     decimal.Decimal
}

// GetPerformanceUseCase handles the performance summary.
type GetPerformanceUseCase struct {
	saleRepo adapter.SaleRepository
	clock    adapter.Clock
	metrics  adapter.MetricsRecorder
}

// NewGetPerformanceUseCase creates a new GetPerformanceUseCase instance.
func NewGetPerformanceUseCase(
	saleRepo adapter.SaleRepository,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
) *GetPerformanceUseCase {
	return &GetPerformanceUseCase{
		saleRepo: saleRepo,
		clock:    clock,
		metrics:  metrics,
	}
}

// Execute aggregates the window and resolves the tier reached by its total volume.
func (uc *GetPerformanceUseCase) Execute(ctx context.Context, input GetPerformanceInput) (*GetPerformanceOutput, error) {
	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	now := uc.clock.Now()
	totals := aggregation.Aggregate(sales, input.Window, now).Totals
	uc.metrics.TotalsComputed(input.Window.Kind(), totals)

	start, end := input.Window.Bounds(now)
	output := &GetPerformanceOutput{
		Totals:               totals,
		WindowKind:           input.Window.Kind(),
		PeriodStart:          start,
		PeriodEnd:            end,
		AdditionalCommission: commission.ResolveAdditionalCommission(totals.TotalVolume),
		VolumeToNextTier:     decimal.Zero,
	}

	if tier, ok := commission.ResolveTier(totals.TotalVolume); ok {
		output.CurrentTier = &tier
	}
	if next, ok := commission.NextTier(totals.TotalVolume); ok {
		output.NextTier = &next
		output.VolumeToNextTier = next.MinAmount.Sub(totals.TotalVolume)
	}

	return output, nil
}
