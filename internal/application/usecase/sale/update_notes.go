package sale

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/entity"
)

// UpdateNotesInput represents the input for replacing a sale's notes.
type UpdateNotesInput struct {
	ID    uuid.UUID
	Notes string
}

// UpdateNotesOutput represents the output of a notes update.
type UpdateNotesOutput struct {
	Sale *entity.Sale
}

// UpdateNotesUseCase handles note edits.
type UpdateNotesUseCase struct {
	saleRepo adapter.SaleRepository
	clock    adapter.Clock
	metrics  adapter.MetricsRecorder
}

// NewUpdateNotesUseCase creates a new UpdateNotesUseCase instance.
func NewUpdateNotesUseCase(
	saleRepo adapter.SaleRepository,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
) *UpdateNotesUseCase {
	return &UpdateNotesUseCase{
		saleRepo: saleRepo,
		clock:    clock,
		metrics:  metrics,
	}
}

// Execute replaces the notes of a sale.
func (uc *UpdateNotesUseCase) Execute(ctx context.Context, input UpdateNotesInput) (*UpdateNotesOutput, error) {
	if err := validateNotes(input.Notes); err != nil {
		return nil, err
	}

	existing, err := findSale(ctx, uc.saleRepo, input.ID)
	if err != nil {
		return nil, err
	}

	sale := existing.Clone()
	sale.Notes = input.Notes
	sale.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale notes: %w", err)
	}

	uc.metrics.SaleMutated(adapter.SaleOperationUpdateNotes, sale.SaleType)

	return &UpdateNotesOutput{Sale: sale}, nil
}
