// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sales-performance/backend/internal/domain/entity"
)

// SaleRepository defines the interface for the session sale store.
type SaleRepository interface {
	// Create appends a new sale to the session.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindAll retrieves every sale in the session in insertion order.
	FindAll(ctx context.Context) ([]*entity.Sale, error)

	// Update replaces an existing sale, keeping its position in the session.
	Update(ctx context.Context, sale *entity.Sale) error

	// Delete removes a sale from the session.
	Delete(ctx context.Context, id uuid.UUID) error
}
