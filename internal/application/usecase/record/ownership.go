package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ops-tracker/backend/internal/application/adapter"
	"github.com/ops-tracker/backend/internal/domain/entity"
	domainerror "github.com/ops-tracker/backend/internal/domain/error"
)

// resolveOwnedProduct loads a product and verifies it belongs to the
// business. Cross-business references carry a distinct code so the
// controller can still answer 404 for both.
func resolveOwnedProduct(ctx context.Context, productRepo adapter.ProductRepository, businessID, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}

	if product.BusinessID != businessID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeProductNotOwned,
			"product does not belong to this business",
			domainerror.ErrProductNotOwned,
		)
	}

	return product, nil
}
