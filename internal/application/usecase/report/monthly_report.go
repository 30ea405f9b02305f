// Package report contains the report aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetMonthlyReportInput represents the input for the monthly report.
type GetMonthlyReportInput struct {
	BusinessID uuid.UUID
	Month      string // YYYY-MM
}

// GetMonthlyReportOutput represents the monthly report.
type GetMonthlyReportOutput struct {
	Month         string
	Period        Period
	TotalSales    decimal.Decimal
	TotalExpenses decimal.Decimal
	MonthlyProfit decimal.Decimal
	DailyAverage  decimal.Decimal
	DaysInMonth   int
}

// GetMonthlyReportUseCase computes sales, expenses and profit over a
// calendar month. The daily average divides profit by the actual
// number of days in that month.
type GetMonthlyReportUseCase struct {
	reportRepo Repository
}

// NewGetMonthlyReportUseCase creates a new GetMonthlyReportUseCase instance.
func NewGetMonthlyReportUseCase(reportRepo Repository) *GetMonthlyReportUseCase {
	return &GetMonthlyReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the monthly report.
func (uc *GetMonthlyReportUseCase) Execute(ctx context.Context, input GetMonthlyReportInput) (*GetMonthlyReportOutput, error) {
	year, month, err := ParseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	period, daysInMonth := MonthBounds(year, month)

	totalSales, err := uc.reportRepo.SumSales(ctx, input.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}

	totalExpenses, err := uc.reportRepo.SumExpenses(ctx, input.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	monthlyProfit := totalSales.Sub(totalExpenses)

	return &GetMonthlyReportOutput{
		Month:         input.Month,
		Period:        period,
		TotalSales:    totalSales,
		TotalExpenses: totalExpenses,
		MonthlyProfit: monthlyProfit,
		DailyAverage:  monthlyProfit.Div(decimal.NewFromInt(int64(daysInMonth))),
		DaysInMonth:   daysInMonth,
	}, nil
}
