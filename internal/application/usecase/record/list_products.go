package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ops-tracker/backend/internal/application/adapter"
	"github.com/ops-tracker/backend/internal/domain/entity"
)

// ListProductsInput represents the input for listing products.
type ListProductsInput struct {
	BusinessID uuid.UUID
}

// ListProductsOutput represents the product listing.
type ListProductsOutput struct {
	Products []entity.Product
}

// ListProductsUseCase lists the product catalog of a business.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute lists all products of the business.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
	products, err := uc.productRepo.ListByBusiness(ctx, input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return &ListProductsOutput{Products: products}, nil
}
