// Package report contains the report aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// NoProfitableProductMessage explains an empty most-profitable result.
const NoProfitableProductMessage = "no profitable product in this period"

// GetProductProfitabilityInput represents the input for the profitability table.
type GetProductProfitabilityInput struct {
	BusinessID uuid.UUID
	StartDate  string
	EndDate    string
}

// GetProductProfitabilityOutput represents the profitability table.
type GetProductProfitabilityOutput struct {
	Period   Period
	Products []ProfitabilityRow
}

// GetProductProfitabilityUseCase computes per-product revenue,
// production cost and profit over a range. Products with no activity
// in the range still appear with all-zero aggregates.
type GetProductProfitabilityUseCase struct {
	reportRepo Repository
}

// NewGetProductProfitabilityUseCase creates a new GetProductProfitabilityUseCase instance.
func NewGetProductProfitabilityUseCase(reportRepo Repository) *GetProductProfitabilityUseCase {
	return &GetProductProfitabilityUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the profitability table.
func (uc *GetProductProfitabilityUseCase) Execute(ctx context.Context, input GetProductProfitabilityInput) (*GetProductProfitabilityOutput, error) {
	period, err := ParseRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	products, err := uc.reportRepo.ProductProfitability(ctx, input.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to compute product profitability: %w", err)
	}

	return &GetProductProfitabilityOutput{
		Period:   period,
		Products: products,
	}, nil
}

// GetMostProfitableInput represents the input for the most-profitable lookup.
type GetMostProfitableInput struct {
	BusinessID uuid.UUID
	StartDate  string
	EndDate    string
}

// GetMostProfitableOutput represents the most-profitable result.
// Product is nil and Message is set when no product turned a profit;
// that is a valid result, not a failure.
type GetMostProfitableOutput struct {
	Period  Period
	Product *ProfitabilityRow
	Message string
}

// GetMostProfitableUseCase picks the single product with the highest
// strictly positive profit over a range.
type GetMostProfitableUseCase struct {
	reportRepo Repository
}

// NewGetMostProfitableUseCase creates a new GetMostProfitableUseCase instance.
func NewGetMostProfitableUseCase(reportRepo Repository) *GetMostProfitableUseCase {
	return &GetMostProfitableUseCase{
		reportRepo: reportRepo,
	}
}

// Execute finds the most profitable product, if any.
func (uc *GetMostProfitableUseCase) Execute(ctx context.Context, input GetMostProfitableInput) (*GetMostProfitableOutput, error) {
	period, err := ParseRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	products, err := uc.reportRepo.ProductProfitability(ctx, input.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to compute product profitability: %w", err)
	}

	top := mostProfitable(products)
	output := &GetMostProfitableOutput{
		Period:  period,
		Product: top,
	}
	if top == nil {
		output.Message = NoProfitableProductMessage
	}
	return output, nil
}

// mostProfitable returns the row with the highest strictly positive
// profit, or nil when every row's profit is zero or negative. Rows
// arrive ordered by profit descending, so the first candidate wins.
func mostProfitable(rows []ProfitabilityRow) *ProfitabilityRow {
	for i := range rows {
		if rows[i].Profit.IsPositive() {
			return &rows[i]
		}
	}
	return nil
}
