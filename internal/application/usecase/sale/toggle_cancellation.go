package sale

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/entity"
)

// ToggleCancellationInput represents the input for flipping a sale's cancellation flag.
type ToggleCancellationInput struct {
	ID uuid.UUID
}

// ToggleCancellationOutput represents the output of a cancellation toggle.
type ToggleCancellationOutput struct {
	Sale *entity.Sale
}

// ToggleCancellationUseCase handles sale cancellation and reinstatement.
type ToggleCancellationUseCase struct {
	saleRepo adapter.SaleRepository
	clock    adapter.Clock
	metrics  adapter.MetricsRecorder
}

// NewToggleCancellationUseCase creates a new ToggleCancellationUseCase instance.
func NewToggleCancellationUseCase(
	saleRepo adapter.SaleRepository,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
) *ToggleCancellationUseCase {
	return &ToggleCancellationUseCase{
		saleRepo: saleRepo,
		clock:    clock,
		metrics:  metrics,
	}
}

// Execute flips IsCancelled and keeps every other field, including the commission snapshot.
func (uc *ToggleCancellationUseCase) Execute(ctx context.Context, input ToggleCancellationInput) (*ToggleCancellationOutput, error) {
	existing, err := findSale(ctx, uc.saleRepo, input.ID)
	if err != nil {
		return nil, err
	}

	sale := existing.Clone()
	sale.IsCancelled = !sale.IsCancelled
	sale.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	operation := adapter.SaleOperationReinstate
	if sale.IsCancelled {
		operation = adapter.SaleOperationCancel
	}
	uc.metrics.SaleMutated(operation, sale.SaleType)

	slog.Info("Sale cancellation toggled", "saleID", sale.ID, "status", sale.Status())

	return &ToggleCancellationOutput{Sale: sale}, nil
}
