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

// ProductionController handles production batch endpoints.
type ProductionController struct {
	createUseCase *record.CreateProductionUseCase
	listUseCase   *record.ListProductionUseCase
}

// NewProductionController creates a new production controller instance.
func NewProductionController(
	createUseCase *record.CreateProductionUseCase,
	listUseCase *record.ListProductionUseCase,
) *ProductionController {
	return &ProductionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /production requests.
func (c *ProductionController) Create(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateProductionRequest
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), record.CreateProductionInput{
		BusinessID: businessID,
		ProductID:  productID,
		Quantity:   req.Quantity,
		UnitCost:   decimal.NewFromFloat(req.UnitCost),
		Date:       req.Date,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductionResponse(output.Batch))
}

// List handles GET /production requests.
func (c *ProductionController) List(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), record.ListProductionInput{
		BusinessID: businessID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	batches := make([]dto.ProductionResponse, len(output.Batches))
	for i := range output.Batches {
		batches[i] = dto.ToProductionResponse(&output.Batches[i])
	}
	ctx.JSON(http.StatusOK, gin.H{"production": batches})
}
