// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ops-tracker/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Type string `json:"type" binding:"required,oneof=manufactured resale"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID.String(),
		Name:      product.Name,
		Type:      string(product.Type),
		CreatedAt: product.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// CreateExpenseRequest represents the request body for recording an expense.
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Amount:      expense.Amount.StringFixed(2),
		Date:        expense.Date.Format(dateLayout),
	}
}

// CreateProductionRequest represents the request body for recording a production batch.
type CreateProductionRequest struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitCost  float64 `json:"unit_cost" binding:"required"`
	Date      string  `json:"date" binding:"required"`
}

// ProductionResponse represents a production batch in API responses.
type ProductionResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitCost  string `json:"unit_cost"`
	TotalCost string `json:"total_cost"`
	Date      string `json:"date"`
}

// ToProductionResponse converts a domain ProductionBatch entity to a ProductionResponse DTO.
func ToProductionResponse(batch *entity.ProductionBatch) ProductionResponse {
	return ProductionResponse{
		ID:        batch.ID.String(),
		ProductID: batch.ProductID.String(),
		Quantity:  batch.Quantity,
		UnitCost:  batch.UnitCost.StringFixed(2),
		TotalCost: batch.TotalCost().StringFixed(2),
		Date:      batch.Date.Format(dateLayout),
	}
}

// CreateSaleRequest represents the request body for recording a sale.
type CreateSaleRequest struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"required"`
	Date      string  `json:"date" binding:"required"`
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
	Date      string `json:"date"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
func ToSaleResponse(sale *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:        sale.ID.String(),
		ProductID: sale.ProductID.String(),
		Quantity:  sale.Quantity,
		UnitPrice: sale.UnitPrice.StringFixed(2),
		Total:     sale.Revenue().StringFixed(2),
		Date:      sale.Date.Format(dateLayout),
	}
}
