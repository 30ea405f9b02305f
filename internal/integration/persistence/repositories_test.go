package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ops-tracker/backend/internal/domain/entity"
)

func TestUserRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("owner@bakery.com", "Maria Silva", "Padaria Central", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil || found.Email != user.Email {
			t.Errorf("unexpected user: %+v", found)
		}
		if found.BusinessID != user.BusinessID {
			t.Error("expected the business scope to round-trip")
		}
	})

	t.Run("finds by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, user.Email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil || found.ID != user.ID {
			t.Errorf("unexpected user: %+v", found)
		}
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "nobody@bakery.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("expected nil, got %+v", found)
		}
	})

	t.Run("exists by email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected the email to exist")
		}

		exists, err = repo.ExistsByEmail(ctx, "nobody@bakery.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected the email to be missing")
		}
	})
}

func TestProductRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	businessID := uuid.New()

	sourdough := entity.NewProduct(businessID, "Sourdough Loaf", entity.ProductTypeManufactured)
	croissant := entity.NewProduct(businessID, "Croissant", entity.ProductTypeManufactured)
	foreign := entity.NewProduct(uuid.New(), "Foreign Good", entity.ProductTypeResale)
	for _, p := range []*entity.Product{sourdough, croissant, foreign} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("miss returns nil without error", func(t *testing.T) {
		found, err := repo.FindByID(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("expected nil, got %+v", found)
		}
	})

	t.Run("list is scoped to the business and ordered by name", func(t *testing.T) {
		products, err := repo.ListByBusiness(ctx, businessID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if products[0].Name != "Croissant" || products[1].Name != "Sourdough Loaf" {
			t.Errorf("unexpected order: %s, %s", products[0].Name, products[1].Name)
		}
	})
}

func TestExpenseRepository_ListByBusiness(t *testing.T) {
	db := openTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	businessID := uuid.New()

	older := entity.NewExpense(businessID, "Flour", decimal.NewFromInt(60), day(t, "2024-06-10"))
	newer := entity.NewExpense(businessID, "Electricity", decimal.NewFromInt(40), day(t, "2024-06-15"))
	for _, e := range []*entity.Expense{older, newer} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	expenses, err := repo.ListByBusiness(ctx, businessID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
	if expenses[0].Description != "Electricity" {
		t.Errorf("expected newest first, got %s", expenses[0].Description)
	}
}

func TestSaleRepository_ListByBusiness(t *testing.T) {
	db := openTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()
	businessID := uuid.New()
	product := seedProduct(t, db, businessID, "Croissant")

	older := entity.NewSale(businessID, product.ID, 2, decimal.NewFromInt(5), day(t, "2024-06-10"))
	newer := entity.NewSale(businessID, product.ID, 4, decimal.NewFromInt(5), day(t, "2024-06-15"))
	for _, s := range []*entity.Sale{older, newer} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	sales, err := repo.ListByBusiness(ctx, businessID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(sales))
	}
	if sales[0].Quantity != 4 {
		t.Errorf("expected newest first, got quantity %d", sales[0].Quantity)
	}
}

func TestProductionRepository_ListByBusiness(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductionRepository(db)
	ctx := context.Background()
	businessID := uuid.New()
	product := seedProduct(t, db, businessID, "Croissant")

	batch := entity.NewProductionBatch(businessID, product.ID, 30, decimal.NewFromFloat(1.25), day(t, "2024-06-10"))
	if err := repo.Create(ctx, batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	batches, err := repo.ListByBusiness(ctx, businessID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(batches))
	}
	if batches[0].Quantity != 30 || !batches[0].UnitCost.Equal(decimal.NewFromFloat(1.25)) {
		t.Errorf("unexpected batch: %+v", batches[0])
	}
}
