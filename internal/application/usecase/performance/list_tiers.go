package performance

import (
	"context"

	"github.com/sales-performance/backend/internal/domain/commission"
	"github.com/sales-performance/backend/internal/domain/entity"
)

// ListTiersOutput represents the commission tier table.
type ListTiersOutput struct {
	Tiers []entity.CommissionTier
}

// ListTiersUseCase returns the commission tier table.
type ListTiersUseCase struct{}

// NewListTiersUseCase creates a new ListTiersUseCase instance.
func NewListTiersUseCase() *ListTiersUseCase {
	return &ListTiersUseCase{}
}

// Execute returns a copy of the tier table in level order.
func (uc *ListTiersUseCase) Execute(_ context.Context) (*ListTiersOutput, error) {
	return &ListTiersOutput{Tiers: commission.Tiers()}, nil
}
