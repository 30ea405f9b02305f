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

// CreateSaleInput represents the input for recording a sale.
type CreateSaleInput struct {
	BusinessID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
	Date       string
}

// CreateSaleOutput represents the recorded sale.
type CreateSaleOutput struct {
	Sale    *entity.Sale
	Product *entity.Product
}

// CreateSaleUseCase handles sale recording.
type CreateSaleUseCase struct {
	saleRepo    adapter.SaleRepository
	productRepo adapter.ProductRepository
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(saleRepo adapter.SaleRepository, productRepo adapter.ProductRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// Execute validates and persists a new sale.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	if input.Quantity <= 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNonPositiveQuantity,
			"quantity must be a positive integer",
			domainerror.ErrNonPositiveQuantity,
		)
	}

	if !input.UnitPrice.IsPositive() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNonPositivePrice,
			"unit price must be positive",
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

	sale := entity.NewSale(input.BusinessID, product.ID, input.Quantity, input.UnitPrice, date)
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return &CreateSaleOutput{Sale: sale, Product: product}, nil
}
