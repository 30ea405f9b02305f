// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ops-tracker/backend/internal/application/usecase/record"
	"github.com/ops-tracker/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product catalog endpoints.
type ProductController struct {
	createUseCase *record.CreateProductUseCase
	listUseCase   *record.ListProductsUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	createUseCase *record.CreateProductUseCase,
	listUseCase *record.ListProductsUseCase,
) *ProductController {
	return &ProductController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), record.CreateProductInput{
		BusinessID: businessID,
		Name:       req.Name,
		Type:       req.Type,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), record.ListProductsInput{
		BusinessID: businessID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	products := make([]dto.ProductResponse, len(output.Products))
	for i := range output.Products {
		products[i] = dto.ToProductResponse(&output.Products[i])
	}
	ctx.JSON(http.StatusOK, gin.H{"products": products})
}
