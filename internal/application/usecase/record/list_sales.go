package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ops-tracker/backend/internal/application/adapter"
	"github.com/ops-tracker/backend/internal/domain/entity"
)

// ListSalesInput represents the input for listing sales.
type ListSalesInput struct {
	BusinessID uuid.UUID
}

// ListSalesOutput represents the sale listing.
type ListSalesOutput struct {
	Sales []entity.Sale
}

// ListSalesUseCase lists the recorded sales of a business.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute lists all sales of the business.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	sales, err := uc.saleRepo.ListByBusiness(ctx, input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return &ListSalesOutput{Sales: sales}, nil
}
