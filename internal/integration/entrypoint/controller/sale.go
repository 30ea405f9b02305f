// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ops-tracker/backend/internal/application/usecase/record"
	"github.com/ops-tracker/backend/internal/integration/entrypoint/dto"
)

// SaleController handles sale record endpoints.
type SaleController struct {
	createUseCase *record.CreateSaleUseCase
	listUseCase   *record.ListSalesUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	createUseCase *record.CreateSaleUseCase,
	listUseCase *record.ListSalesUseCase,
) *SaleController {
	return &SaleController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product_id",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), record.CreateSaleInput{
		BusinessID: businessID,
		ProductID:  productID,
		Quantity:   req.Quantity,
		UnitPrice:  decimal.NewFromFloat(req.UnitPrice),
		Date:       req.Date,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), record.ListSalesInput{
		BusinessID: businessID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	sales := make([]dto.SaleResponse, len(output.Sales))
	for i := range output.Sales {
		sales[i] = dto.ToSaleResponse(&output.Sales[i])
	}
	ctx.JSON(http.StatusOK, gin.H{"sales": sales})
}
