package sale

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/aggregation"
	"github.com/sales-performance/backend/internal/domain/commission"
	"github.com/sales-performance/backend/internal/domain/entity"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

// UpdateSaleInput represents the input for a full sale replacement.
type UpdateSaleInput struct {
	ID uuid.UUID
	SaleFields
	Window valueobject.ReportingWindow
}

// UpdateSaleOutput represents the output of a sale update.
type UpdateSaleOutput struct {
	Sale  *entity.Sale
	Quote commission.QuoteResult
}

// UpdateSaleUseCase handles sale replacement logic.
type UpdateSaleUseCase struct {
	saleRepo adapter.SaleRepository
	clock    adapter.Clock
	metrics  adapter.MetricsRecorder
}

// NewUpdateSaleUseCase creates a new UpdateSaleUseCase instance.
func NewUpdateSaleUseCase(
	saleRepo adapter.SaleRepository,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo: saleRepo,
		clock:    clock,
		metrics:  metrics,
	}
}

// Execute replaces every user-entered field of a sale and recomputes its snapshot.
// The ID, rank, cancellation flag and creation time are kept.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, input UpdateSaleInput) (*UpdateSaleOutput, error) {
	if err := validateSaleFields(input.SaleFields); err != nil {
		return nil, err
	}

	existing, err := findSale(ctx, uc.saleRepo, input.ID)
	if err != nil {
		return nil, err
	}

	all, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	// The previous version of the sale must not count towards its own new price.
	others := aggregation.Aggregate(excludeSale(all, input.ID), input.Window, uc.clock.Now())

	quote := commission.Quote(commission.QuoteInput{
		SaleAmount:     input.SaleAmount,
		SaleType:       input.SaleType,
		NumberOfTours:  input.NumberOfTours,
		FDIGivenPoints: input.FDIGivenPoints,
		PriorVolume:    others.Totals.TotalVolume,
	})

	sale := existing.Clone()
	sale.Date = entity.DateOnly(input.Date)
	sale.ClientLastName = strings.TrimSpace(input.ClientLastName)
	sale.NumberOfTours = input.NumberOfTours
	sale.ManagerName = strings.TrimSpace(input.ManagerName)
	sale.SaleAmount = input.SaleAmount
	sale.SaleType = input.SaleType
	sale.Notes = input.Notes
	sale.LeadNumber = strings.TrimSpace(input.LeadNumber)
	sale.FDI = strings.TrimSpace(input.FDI)
	sale.FDIGivenPoints = input.FDIGivenPoints
	sale.SetCommissionSnapshot(quote.Snapshot())
	sale.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	uc.metrics.SaleMutated(adapter.SaleOperationUpdate, sale.SaleType)
	uc.metrics.CommissionQuoted(tierLevel(quote.Tier))

	slog.Info("Sale updated",
		"saleID", sale.ID,
		"amount", sale.SaleAmount.String(),
		"commissionPercentage", sale.CommissionPercentage.String(),
	)

	return &UpdateSaleOutput{
		Sale:  sale,
		Quote: quote,
	}, nil
}
