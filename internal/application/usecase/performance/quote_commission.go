package performance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/aggregation"
	"github.com/sales-performance/backend/internal/domain/commission"
	"github.com/sales-performance/backend/internal/domain/entity"
	domainerror "github.com/sales-performance/backend/internal/domain/error"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

// QuoteCommissionInput represents a prospective sale to price.
type QuoteCommissionInput struct {
	SaleAmount     decimal.Decimal
	SaleType       entity.SaleType
	NumberOfTours  int
	FDIGivenPoints decimal.Decimal
	// PriorVolume overrides the window's current volume when set.
	PriorVolume *decimal.Decimal
	Window      valueobject.ReportingWindow
}

// QuoteCommissionOutput represents the snapshot the sale would receive.
type QuoteCommissionOutput struct {
	Quote commission.QuoteResult
}

// QuoteCommissionUseCase prices a sale without recording it.
type QuoteCommissionUseCase struct {
	saleRepo adapter.SaleRepository
	clock    adapter.Clock
	metrics  adapter.MetricsRecorder
}

// NewQuoteCommissionUseCase creates a new QuoteCommissionUseCase instance.
func NewQuoteCommissionUseCase(
	saleRepo adapter.SaleRepository,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
) *QuoteCommissionUseCase {
	return &QuoteCommissionUseCase{
		saleRepo: saleRepo,
		clock:    clock,
		metrics:  metrics,
	}
}

// Execute returns the commission snapshot for the prospective sale.
func (uc *QuoteCommissionUseCase) Execute(ctx context.Context, input QuoteCommissionInput) (*QuoteCommissionOutput, error) {
	if !input.SaleType.IsValid() {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleType,
			"sale type must be 'DEED' or 'TRUST'",
			domainerror.ErrInvalidSaleType,
		)
	}

	if input.SaleAmount.IsNegative() || input.FDIGivenPoints.IsNegative() || input.NumberOfTours < 0 ||
		(input.PriorVolume != nil && input.PriorVolume.IsNegative()) {
		return nil, domainerror.NewPerformanceError(
			domainerror.ErrCodeInvalidQuote,
			"sale amount, tours, given points and volume must not be negative",
			domainerror.ErrInvalidQuoteAmount,
		)
	}

	var prior decimal.Decimal
	if input.PriorVolume != nil {
		prior = *input.PriorVolume
	} else {
		sales, err := uc.saleRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list sales: %w", err)
		}
		prior = aggregation.Aggregate(sales, input.Window, uc.clock.Now()).Totals.TotalVolume
	}

	quote := commission.Quote(commission.QuoteInput{
		SaleAmount:     input.SaleAmount,
		SaleType:       input.SaleType,
		NumberOfTours:  input.NumberOfTours,
		FDIGivenPoints: input.FDIGivenPoints,
		PriorVolume:    prior,
	})

	level := 0
	if quote.Tier != nil {
		level = quote.Tier.Level
	}
	uc.metrics.CommissionQuoted(level)

	return &QuoteCommissionOutput{Quote: quote}, nil
}
