// Package record contains the use cases that create and list the raw
// operational records: products, expenses, production batches and sales.
package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ops-tracker/backend/internal/application/adapter"
	"github.com/ops-tracker/backend/internal/domain/entity"
	domainerror "github.com/ops-tracker/backend/internal/domain/error"
)

// CreateProductInput represents the input for creating a product.
type CreateProductInput struct {
	BusinessID uuid.UUID
	Name       string
	Type       string
}

// CreateProductOutput represents the created product.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute validates and persists a new product.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingProductName,
			"product name is required",
			domainerror.ErrMissingProductName,
		)
	}

	productType := entity.ProductType(input.Type)
	if productType != entity.ProductTypeManufactured && productType != entity.ProductTypeResale {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidProductType,
			"product type must be 'manufactured' or 'resale'",
			domainerror.ErrInvalidProductType,
		)
	}

	product := entity.NewProduct(input.BusinessID, name, productType)
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{Product: product}, nil
}
