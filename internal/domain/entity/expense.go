// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single business expense on a calendar date.
// Expenses are immutable once recorded.
type Expense struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(businessID uuid.UUID, description string, amount decimal.Decimal, date time.Time) *Expense {
	return &Expense{
		ID:          uuid.New(),
		BusinessID:  businessID,
		Description: description,
		Amount:      amount,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
