// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ops-tracker/backend/internal/application/usecase/record"
	"github.com/ops-tracker/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense record endpoints.
type ExpenseController struct {
	createUseCase *record.CreateExpenseUseCase
	listUseCase   *record.ListExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *record.CreateExpenseUseCase,
	listUseCase *record.ListExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), record.CreateExpenseInput{
		BusinessID:  businessID,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        req.Date,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), record.ListExpensesInput{
		BusinessID: businessID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	expenses := make([]dto.ExpenseResponse, len(output.Expenses))
	for i := range output.Expenses {
		expenses[i] = dto.ToExpenseResponse(&output.Expenses[i])
	}
	ctx.JSON(http.StatusOK, gin.H{"expenses": expenses})
}
