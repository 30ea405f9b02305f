package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ops-tracker/backend/internal/application/adapter"
	"github.com/ops-tracker/backend/internal/domain/entity"
)

// ListProductionInput represents the input for listing production batches.
type ListProductionInput struct {
	BusinessID uuid.UUID
}

// ListProductionOutput represents the production batch listing.
type ListProductionOutput struct {
	Batches []entity.ProductionBatch
}

// ListProductionUseCase lists the recorded production batches of a business.
type ListProductionUseCase struct {
	productionRepo adapter.ProductionRepository
}

// NewListProductionUseCase creates a new ListProductionUseCase instance.
func NewListProductionUseCase(productionRepo adapter.ProductionRepository) *ListProductionUseCase {
	return &ListProductionUseCase{
		productionRepo: productionRepo,
	}
}

// Execute lists all production batches of the business.
func (uc *ListProductionUseCase) Execute(ctx context.Context, input ListProductionInput) (*ListProductionOutput, error) {
	batches, err := uc.productionRepo.ListByBusiness(ctx, input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list production batches: %w", err)
	}
	return &ListProductionOutput{Batches: batches}, nil
}
