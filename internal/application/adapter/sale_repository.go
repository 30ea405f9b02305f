// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ops-tracker/backend/internal/domain/entity"
)

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create creates a new sale in the database.
	Create(ctx context.Context, sale *entity.Sale) error

	// ListByBusiness retrieves every sale of a business, newest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.Sale, error)
}
