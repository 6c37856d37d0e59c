package sale

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/aggregation"
	"github.com/sales-performance/backend/internal/domain/commission"
	"github.com/sales-performance/backend/internal/domain/entity"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

// RecordSaleInput represents the input for recording a sale.
type RecordSaleInput struct {
	SaleFields
	// Window is the reporting window whose running volume prices the sale.
	Window valueobject.ReportingWindow
}

// RecordSaleOutput represents the output of recording a sale.
type RecordSaleOutput struct {
	Sale  *entity.Sale
	Quote commission.QuoteResult
}

// RecordSaleUseCase handles sale recording logic.
type RecordSaleUseCase struct {
	saleRepo adapter.SaleRepository
	clock    adapter.Clock
	metrics  adapter.MetricsRecorder
}

// NewRecordSaleUseCase creates a new RecordSaleUseCase instance.
func NewRecordSaleUseCase(
	saleRepo adapter.SaleRepository,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		saleRepo: saleRepo,
		clock:    clock,
		metrics:  metrics,
	}
}

// Execute records a new sale with its commission snapshot.
func (uc *RecordSaleUseCase) Execute(ctx context.Context, input RecordSaleInput) (*RecordSaleOutput, error) {
	if err := validateSaleFields(input.SaleFields); err != nil {
		return nil, err
	}

	existing, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	// The sale is priced against the window's volume so far and ranked after its active sales.
	current := aggregation.Aggregate(existing, input.Window, uc.clock.Now())

	quote := commission.Quote(commission.QuoteInput{
		SaleAmount:     input.SaleAmount,
		SaleType:       input.SaleType,
		NumberOfTours:  input.NumberOfTours,
		FDIGivenPoints: input.FDIGivenPoints,
		PriorVolume:    current.Totals.TotalVolume,
	})

	sale := entity.NewSale(
		input.Date,
		strings.TrimSpace(input.ClientLastName),
		input.NumberOfTours,
		strings.TrimSpace(input.ManagerName),
		input.SaleAmount,
		input.SaleType,
		input.Notes,
		strings.TrimSpace(input.LeadNumber),
		strings.TrimSpace(input.FDI),
		input.FDIGivenPoints,
	)
	sale.SetCommissionSnapshot(quote.Snapshot())
	rank := current.Totals.ActiveSales + 1
	sale.Rank = &rank

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	uc.metrics.SaleMutated(adapter.SaleOperationRecord, sale.SaleType)
	uc.metrics.CommissionQuoted(tierLevel(quote.Tier))

	slog.Info("Sale recorded",
		"saleID", sale.ID,
		"saleType", sale.SaleType,
		"amount", sale.SaleAmount.String(),
		"commissionPercentage", sale.CommissionPercentage.String(),
		"cumulativeVolume", quote.CumulativeVolume.String(),
	)

	return &RecordSaleOutput{
		Sale:  sale,
		Quote: quote,
	}, nil
}
