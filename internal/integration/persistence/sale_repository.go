// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/entity"
	domainerror "github.com/sales-performance/backend/internal/domain/error"
	"github.com/sales-performance/backend/internal/integration/persistence/model"
)

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create appends a new sale after the last stored position.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int64
		if err := tx.Model(&model.SaleModel{}).
			Select("COALESCE(MAX(position), 0)").
			Scan(&last).Error; err != nil {
			return err
		}

		saleModel := model.SaleFromEntity(sale)
		saleModel.Position = last + 1
		return tx.Create(saleModel).Error
	})
}

// FindByID retrieves a sale by its ID.
func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// FindAll retrieves every sale in insertion order.
func (r *saleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).Order("position ASC").Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = saleModels[i].ToEntity()
	}
	return sales, nil
}

// Update replaces every column of a sale except its position and creation time.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).
		Model(saleModel).
		Select("*").
		Omit("id", "position", "created_at").
		Updates(saleModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSaleNotFound
	}
	return nil
}

// Delete removes a sale from the session.
func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SaleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSaleNotFound
	}
	return nil
}
