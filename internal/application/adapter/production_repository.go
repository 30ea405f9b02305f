// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ops-tracker/backend/internal/domain/entity"
)

// ProductionRepository defines the interface for production batch persistence operations.
type ProductionRepository interface {
	// Create creates a new production batch in the database.
	Create(ctx context.Context, batch *entity.ProductionBatch) error

	// ListByBusiness retrieves every production batch of a business, newest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.ProductionBatch, error)
}
