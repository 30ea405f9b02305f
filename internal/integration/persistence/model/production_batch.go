// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ops-tracker/backend/internal/domain/entity"
)

// ProductionBatchModel represents the production_batches table in the database.
type ProductionBatchModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BusinessID uuid.UUID       `gorm:"type:uuid;not null;index:idx_production_business_date"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitCost   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date       time.Time       `gorm:"type:date;not null;index:idx_production_business_date"`
	CreatedAt  time.Time       `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName returns the table name for the ProductionBatchModel.
func (ProductionBatchModel) TableName() string {
	return "production_batches"
}

// ToEntity converts a ProductionBatchModel to a domain ProductionBatch entity.
func (m *ProductionBatchModel) ToEntity() *entity.ProductionBatch {
	return &entity.ProductionBatch{
		ID:         m.ID,
		BusinessID: m.BusinessID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		UnitCost:   m.UnitCost,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
	}
}

// ProductionBatchFromEntity creates a ProductionBatchModel from a domain ProductionBatch entity.
func ProductionBatchFromEntity(batch *entity.ProductionBatch) *ProductionBatchModel {
	return &ProductionBatchModel{
		ID:         batch.ID,
		BusinessID: batch.BusinessID,
		ProductID:  batch.ProductID,
		Quantity:   batch.Quantity,
		UnitCost:   batch.UnitCost,
		Date:       batch.Date,
		CreatedAt:  batch.CreatedAt,
	}
}
