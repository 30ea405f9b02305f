// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale represents units of a product sold on a calendar date.
// Its revenue contribution is quantity times unit price.
type Sale struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
	Date       time.Time
	CreatedAt  time.Time
}

// NewSale creates a new Sale entity.
func NewSale(businessID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal, date time.Time) *Sale {
	return &Sale{
		ID:         uuid.New(),
		BusinessID: businessID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Date:       date,
		CreatedAt:  time.Now().UTC(),
	}
}

// Revenue returns quantity x unit price.
func (s *Sale) Revenue() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
