// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductionBatch represents units of a product produced on a calendar date.
// Its cost contribution is quantity times unit cost.
type ProductionBatch struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	UnitCost   decimal.Decimal
	Date       time.Time
	CreatedAt  time.Time
}

// NewProductionBatch creates a new ProductionBatch entity.
func NewProductionBatch(businessID, productID uuid.UUID, quantity int, unitCost decimal.Decimal, date time.Time) *ProductionBatch {
	return &ProductionBatch{
		ID:         uuid.New(),
		BusinessID: businessID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitCost:   unitCost,
		Date:       date,
		CreatedAt:  time.Now().UTC(),
	}
}

// TotalCost returns quantity x unit cost.
func (b *ProductionBatch) TotalCost() decimal.Decimal {
	return b.UnitCost.Mul(decimal.NewFromInt(int64(b.Quantity)))
}
