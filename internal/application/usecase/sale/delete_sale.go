package sale

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sales-performance/backend/internal/application/adapter"
	domainerror "github.com/sales-performance/backend/internal/domain/error"
)

// DeleteSaleInput represents the input for sale deletion.
type DeleteSaleInput struct {
	ID uuid.UUID
}

// DeleteSaleUseCase handles sale deletion logic.
type DeleteSaleUseCase struct {
	saleRepo adapter.SaleRepository
	metrics  adapter.MetricsRecorder
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(saleRepo adapter.SaleRepository, metrics adapter.MetricsRecorder) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo: saleRepo,
		metrics:  metrics,
	}
}

// Execute removes a sale from the session.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) error {
	sale, err := findSale(ctx, uc.saleRepo, input.ID)
	if err != nil {
		return err
	}

	if err := uc.saleRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return notFoundError()
		}
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	uc.metrics.SaleMutated(adapter.SaleOperationDelete, sale.SaleType)
	slog.Info("Sale deleted", "saleID", input.ID)

	return nil
}
