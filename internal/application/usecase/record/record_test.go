package record

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ops-tracker/backend/internal/domain/entity"
	domainerror "github.com/ops-tracker/backend/internal/domain/error"
)

// fakeProductRepository keeps products in a map; FindByID mirrors the
// persistence convention of returning nil, nil on a miss.
type fakeProductRepository struct {
	products map[uuid.UUID]*entity.Product
	created  []*entity.Product
	err      error
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepository) add(product *entity.Product) {
	f.products[product.ID] = product
}

func (f *fakeProductRepository) Create(_ context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	f.products[product.ID] = product
	f.created = append(f.created, product)
	return nil
}

func (f *fakeProductRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}

func (f *fakeProductRepository) ListByBusiness(_ context.Context, businessID uuid.UUID) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Product
	for _, p := range f.products {
		if p.BusinessID == businessID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeExpenseRepository struct {
	created []*entity.Expense
	err     error
}

func (f *fakeExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, expense)
	return nil
}

func (f *fakeExpenseRepository) ListByBusiness(_ context.Context, _ uuid.UUID) ([]entity.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Expense, 0, len(f.created))
	for _, e := range f.created {
		out = append(out, *e)
	}
	return out, nil
}

type fakeSaleRepository struct {
	created []*entity.Sale
	err     error
}

func (f *fakeSaleRepository) Create(_ context.Context, sale *entity.Sale) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, sale)
	return nil
}

func (f *fakeSaleRepository) ListByBusiness(_ context.Context, _ uuid.UUID) ([]entity.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Sale, 0, len(f.created))
	for _, s := range f.created {
		out = append(out, *s)
	}
	return out, nil
}

type fakeProductionRepository struct {
	created []*entity.ProductionBatch
	err     error
}

func (f *fakeProductionRepository) Create(_ context.Context, batch *entity.ProductionBatch) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, batch)
	return nil
}

func (f *fakeProductionRepository) ListByBusiness(_ context.Context, _ uuid.UUID) ([]entity.ProductionBatch, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.ProductionBatch, 0, len(f.created))
	for _, b := range f.created {
		out = append(out, *b)
	}
	return out, nil
}

func assertRecordCode(t *testing.T, err error, code domainerror.RecordErrorCode) {
	t.Helper()
	var recordErr *domainerror.RecordError
	if !errors.As(err, &recordErr) {
		t.Fatalf("expected a RecordError, got %v", err)
	}
	if recordErr.Code != code {
		t.Errorf("expected code %s, got %s", code, recordErr.Code)
	}
}

func TestCreateProductUseCase_Execute(t *testing.T) {
	businessID := uuid.New()

	t.Run("creates a manufactured product", func(t *testing.T) {
		repo := newFakeProductRepository()
		output, err := NewCreateProductUseCase(repo).Execute(context.Background(), CreateProductInput{
			BusinessID: businessID,
			Name:       "  Sourdough Loaf  ",
			Type:       "manufactured",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Product.Name != "Sourdough Loaf" {
			t.Errorf("expected trimmed name, got %q", output.Product.Name)
		}
		if output.Product.Type != entity.ProductTypeManufactured {
			t.Errorf("expected manufactured, got %s", output.Product.Type)
		}
		if output.Product.BusinessID != businessID {
			t.Error("expected product scoped to the business")
		}
		if len(repo.created) != 1 {
			t.Errorf("expected 1 persisted product, got %d", len(repo.created))
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		_, err := NewCreateProductUseCase(newFakeProductRepository()).Execute(context.Background(), CreateProductInput{
			BusinessID: businessID,
			Name:       "   ",
			Type:       "resale",
		})
		assertRecordCode(t, err, domainerror.ErrCodeMissingProductName)
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		_, err := NewCreateProductUseCase(newFakeProductRepository()).Execute(context.Background(), CreateProductInput{
			BusinessID: businessID,
			Name:       "Sourdough Loaf",
			Type:       "imported",
		})
		assertRecordCode(t, err, domainerror.ErrCodeInvalidProductType)
	})
}

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	businessID := uuid.New()

	t.Run("creates an expense", func(t *testing.T) {
		repo := &fakeExpenseRepository{}
		output, err := NewCreateExpenseUseCase(repo).Execute(context.Background(), CreateExpenseInput{
			BusinessID:  businessID,
			Description: "Flour delivery",
			Amount:      decimal.NewFromFloat(120.50),
			Date:        "2024-06-12",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Expense.Amount.Equal(decimal.NewFromFloat(120.50)) {
			t.Errorf("expected amount 120.50, got %s", output.Expense.Amount)
		}
		if len(repo.created) != 1 {
			t.Errorf("expected 1 persisted expense, got %d", len(repo.created))
		}
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		_, err := NewCreateExpenseUseCase(&fakeExpenseRepository{}).Execute(context.Background(), CreateExpenseInput{
			BusinessID:  businessID,
			Description: "Free sample stock",
			Amount:      decimal.Zero,
			Date:        "2024-06-12",
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		_, err := NewCreateExpenseUseCase(&fakeExpenseRepository{}).Execute(context.Background(), CreateExpenseInput{
			BusinessID:  businessID,
			Description: "Refund",
			Amount:      decimal.NewFromFloat(-5),
			Date:        "2024-06-12",
		})
		assertRecordCode(t, err, domainerror.ErrCodeNegativeAmount)
	})

	t.Run("rejects a blank description", func(t *testing.T) {
		_, err := NewCreateExpenseUseCase(&fakeExpenseRepository{}).Execute(context.Background(), CreateExpenseInput{
			BusinessID: businessID,
			Amount:     decimal.NewFromFloat(10),
			Date:       "2024-06-12",
		})
		assertRecordCode(t, err, domainerror.ErrCodeMissingDescription)
	})

	t.Run("rejects a missing date", func(t *testing.T) {
		_, err := NewCreateExpenseUseCase(&fakeExpenseRepository{}).Execute(context.Background(), CreateExpenseInput{
			BusinessID:  businessID,
			Description: "Flour delivery",
			Amount:      decimal.NewFromFloat(10),
		})
		assertRecordCode(t, err, domainerror.ErrCodeRecordMissingDate)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := NewCreateExpenseUseCase(&fakeExpenseRepository{}).Execute(context.Background(), CreateExpenseInput{
			BusinessID:  businessID,
			Description: "Flour delivery",
			Amount:      decimal.NewFromFloat(10),
			Date:        "12-06-2024",
		})
		assertRecordCode(t, err, domainerror.ErrCodeRecordInvalidDate)
	})
}

func TestCreateSaleUseCase_Execute(t *testing.T) {
	businessID := uuid.New()

	setup := func() (*fakeSaleRepository, *fakeProductRepository, *entity.Product) {
		saleRepo := &fakeSaleRepository{}
		productRepo := newFakeProductRepository()
		product := entity.NewProduct(businessID, "Croissant", entity.ProductTypeManufactured)
		productRepo.add(product)
		return saleRepo, productRepo, product
	}

	t.Run("creates a sale against an owned product", func(t *testing.T) {
		saleRepo, productRepo, product := setup()
		output, err := NewCreateSaleUseCase(saleRepo, productRepo).Execute(context.Background(), CreateSaleInput{
			BusinessID: businessID,
			ProductID:  product.ID,
			Quantity:   4,
			UnitPrice:  decimal.NewFromFloat(7.50),
			Date:       "2024-06-12",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Sale.Quantity != 4 {
			t.Errorf("expected quantity 4, got %d", output.Sale.Quantity)
		}
		if output.Product.Name != "Croissant" {
			t.Errorf("expected the resolved product, got %q", output.Product.Name)
		}
		if len(saleRepo.created) != 1 {
			t.Errorf("expected 1 persisted sale, got %d", len(saleRepo.created))
		}
	})

	t.Run("rejects a zero quantity", func(t *testing.T) {
		saleRepo, productRepo, product := setup()
		_, err := NewCreateSaleUseCase(saleRepo, productRepo).Execute(context.Background(), CreateSaleInput{
			BusinessID: businessID,
			ProductID:  product.ID,
			Quantity:   0,
			UnitPrice:  decimal.NewFromFloat(7.50),
			Date:       "2024-06-12",
		})
		assertRecordCode(t, err, domainerror.ErrCodeNonPositiveQuantity)
	})

	t.Run("rejects a zero unit price", func(t *testing.T) {
		saleRepo, productRepo, product := setup()
		_, err := NewCreateSaleUseCase(saleRepo, productRepo).Execute(context.Background(), CreateSaleInput{
			BusinessID: businessID,
			ProductID:  product.ID,
			Quantity:   4,
			UnitPrice:  decimal.Zero,
			Date:       "2024-06-12",
		})
		assertRecordCode(t, err, domainerror.ErrCodeNonPositivePrice)
	})

	t.Run("rejects an unknown product", func(t *testing.T) {
		saleRepo, productRepo, _ := setup()
		_, err := NewCreateSaleUseCase(saleRepo, productRepo).Execute(context.Background(), CreateSaleInput{
			BusinessID: businessID,
			ProductID:  uuid.New(),
			Quantity:   4,
			UnitPrice:  decimal.NewFromFloat(7.50),
			Date:       "2024-06-12",
		})
		assertRecordCode(t, err, domainerror.ErrCodeProductNotFound)
	})

	t.Run("rejects a product of another business", func(t *testing.T) {
		saleRepo, productRepo, _ := setup()
		foreign := entity.NewProduct(uuid.New(), "Foreign Good", entity.ProductTypeResale)
		productRepo.add(foreign)

		_, err := NewCreateSaleUseCase(saleRepo, productRepo).Execute(context.Background(), CreateSaleInput{
			BusinessID: businessID,
			ProductID:  foreign.ID,
			Quantity:   4,
			UnitPrice:  decimal.NewFromFloat(7.50),
			Date:       "2024-06-12",
		})
		assertRecordCode(t, err, domainerror.ErrCodeProductNotOwned)
	})
}

func TestCreateProductionUseCase_Execute(t *testing.T) {
	businessID := uuid.New()

	setup := func() (*fakeProductionRepository, *fakeProductRepository, *entity.Product) {
		productionRepo := &fakeProductionRepository{}
		productRepo := newFakeProductRepository()
		product := entity.NewProduct(businessID, "Croissant", entity.ProductTypeManufactured)
		productRepo.add(product)
		return productionRepo, productRepo, product
	}

	t.Run("creates a production batch", func(t *testing.T) {
		productionRepo, productRepo, product := setup()
		output, err := NewCreateProductionUseCase(productionRepo, productRepo).Execute(context.Background(), CreateProductionInput{
			BusinessID: businessID,
			ProductID:  product.ID,
			Quantity:   30,
			UnitCost:   decimal.NewFromFloat(1.25),
			Date:       "2024-06-12",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Batch.Quantity != 30 {
			t.Errorf("expected quantity 30, got %d", output.Batch.Quantity)
		}
		if !output.Batch.UnitCost.Equal(decimal.NewFromFloat(1.25)) {
			t.Errorf("expected unit cost 1.25, got %s", output.Batch.UnitCost)
		}
		if len(productionRepo.created) != 1 {
			t.Errorf("expected 1 persisted batch, got %d", len(productionRepo.created))
		}
	})

	t.Run("rejects a negative quantity", func(t *testing.T) {
		productionRepo, productRepo, product := setup()
		_, err := NewCreateProductionUseCase(productionRepo, productRepo).Execute(context.Background(), CreateProductionInput{
			BusinessID: businessID,
			ProductID:  product.ID,
			Quantity:   -2,
			UnitCost:   decimal.NewFromFloat(1.25),
			Date:       "2024-06-12",
		})
		assertRecordCode(t, err, domainerror.ErrCodeNonPositiveQuantity)
	})

	t.Run("rejects a non-positive unit cost", func(t *testing.T) {
		productionRepo, productRepo, product := setup()
		_, err := NewCreateProductionUseCase(productionRepo, productRepo).Execute(context.Background(), CreateProductionInput{
			BusinessID: businessID,
			ProductID:  product.ID,
			Quantity:   30,
			UnitCost:   decimal.NewFromFloat(-1),
			Date:       "2024-06-12",
		})
		assertRecordCode(t, err, domainerror.ErrCodeNonPositivePrice)
	})

	t.Run("rejects an unknown product", func(t *testing.T) {
		productionRepo, productRepo, _ := setup()
		_, err := NewCreateProductionUseCase(productionRepo, productRepo).Execute(context.Background(), CreateProductionInput{
			BusinessID: businessID,
			ProductID:  uuid.New(),
			Quantity:   30,
			UnitCost:   decimal.NewFromFloat(1.25),
			Date:       "2024-06-12",
		})
		assertRecordCode(t, err, domainerror.ErrCodeProductNotFound)
	})
}

func TestListUseCases_Execute(t *testing.T) {
	businessID := uuid.New()

	t.Run("list products returns the business catalog", func(t *testing.T) {
		productRepo := newFakeProductRepository()
		productRepo.add(entity.NewProduct(businessID, "Croissant", entity.ProductTypeManufactured))
		productRepo.add(entity.NewProduct(businessID, "Sourdough Loaf", entity.ProductTypeManufactured))
		productRepo.add(entity.NewProduct(uuid.New(), "Foreign Good", entity.ProductTypeResale))

		output, err := NewListProductsUseCase(productRepo).Execute(context.Background(), ListProductsInput{
			BusinessID: businessID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Products) != 2 {
			t.Errorf("expected 2 products, got %d", len(output.Products))
		}
	})

	t.Run("list expenses propagates repository failures", func(t *testing.T) {
		repoErr := errors.New("connection reset")
		_, err := NewListExpensesUseCase(&fakeExpenseRepository{err: repoErr}).Execute(context.Background(), ListExpensesInput{
			BusinessID: businessID,
		})
		if !errors.Is(err, repoErr) {
			t.Errorf("expected wrapped repository error, got %v", err)
		}
	})

	t.Run("empty lists are valid results", func(t *testing.T) {
		output, err := NewListSalesUseCase(&fakeSaleRepository{}).Execute(context.Background(), ListSalesInput{
			BusinessID: businessID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Sales) != 0 {
			t.Errorf("expected no sales, got %d", len(output.Sales))
		}
	})
}
