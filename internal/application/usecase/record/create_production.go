package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ops-tracker/backend/internal/application/adapter"
	"github.com/ops-tracker/backend/internal/domain/entity"
	domainerror "github.com/ops-tracker/backend/internal/domain/error"
)

// CreateProductionInput represents the input for recording a production batch.
type CreateProductionInput struct {
	BusinessID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	UnitCost   decimal.Decimal
	Date       string
}

// CreateProductionOutput represents the recorded production batch.
type CreateProductionOutput struct {
	Batch   *entity.ProductionBatch
	Product *entity.Product
}

// CreateProductionUseCase handles production batch recording.
type CreateProductionUseCase struct {
	productionRepo adapter.ProductionRepository
	productRepo    adapter.ProductRepository
}

// NewCreateProductionUseCase creates a new CreateProductionUseCase instance.
func NewCreateProductionUseCase(productionRepo adapter.ProductionRepository, productRepo adapter.ProductRepository) *CreateProductionUseCase {
	return &CreateProductionUseCase{
		productionRepo: productionRepo,
		productRepo:    productRepo,
	}
}

// Execute validates and persists a new production batch.
func (uc *CreateProductionUseCase) Execute(ctx context.Context, input CreateProductionInput) (*CreateProductionOutput, error) {
	if input.Quantity <= 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNonPositiveQuantity,
			"quantity must be a positive integer",
			domainerror.ErrNonPositiveQuantity,
		)
	}

	if !input.UnitCost.IsPositive() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNonPositivePrice,
			"unit cost must be positive",
			domainerror.ErrNonPositivePrice,
		)
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	product, err := resolveOwnedProduct(ctx, uc.productRepo, input.BusinessID, input.ProductID)
	if err != nil {
		return nil, err
	}

	batch := entity.NewProductionBatch(input.BusinessID, product.ID, input.Quantity, input.UnitCost, date)
	if err := uc.productionRepo.Create(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to create production batch: %w", err)
	}

	return &CreateProductionOutput{Batch: batch, Product: product}, nil
}
