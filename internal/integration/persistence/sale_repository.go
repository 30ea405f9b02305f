// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ops-tracker/backend/internal/application/adapter"
	"github.com/ops-tracker/backend/internal/domain/entity"
	"github.com/ops-tracker/backend/internal/integration/persistence/model"
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

// Create creates a new sale in the database.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	return r.db.WithContext(ctx).Create(saleModel).Error
}

// ListByBusiness retrieves every sale of a business, newest first.
func (r *saleRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("date DESC, created_at DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]entity.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = *saleModels[i].ToEntity()
	}
	return sales, nil
}
