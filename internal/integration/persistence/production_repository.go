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

// productionRepository implements the adapter.ProductionRepository interface.
type productionRepository struct {
	db *gorm.DB
}

// NewProductionRepository creates a new production batch repository instance.
func NewProductionRepository(db *gorm.DB) adapter.ProductionRepository {
	return &productionRepository{
		db: db,
	}
}

// Create creates a new production batch in the database.
func (r *productionRepository) Create(ctx context.Context, batch *entity.ProductionBatch) error {
	batchModel := model.ProductionBatchFromEntity(batch)
	return r.db.WithContext(ctx).Create(batchModel).Error
}

// ListByBusiness retrieves every production batch of a business, newest first.
func (r *productionRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.ProductionBatch, error) {
	var batchModels []model.ProductionBatchModel
	result := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("date DESC, created_at DESC").
		Find(&batchModels)
	if result.Error != nil {
		return nil, result.Error
	}

	batches := make([]entity.ProductionBatch, len(batchModels))
	for i := range batchModels {
		batches[i] = *batchModels[i].ToEntity()
	}
	return batches, nil
}
