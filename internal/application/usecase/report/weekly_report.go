// Package report contains the report aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// daysPerWeek is the fixed divisor for weekly daily averages; average
// over the whole week regardless of how many days had activity.
const daysPerWeek = 7

// GetWeeklyReportInput represents the input for the weekly report.
type GetWeeklyReportInput struct {
	BusinessID uuid.UUID
	Date       string // any date inside the target week, YYYY-MM-DD
}

// GetWeeklyReportOutput represents the weekly report.
type GetWeeklyReportOutput struct {
	Period             Period
	TotalSales         decimal.Decimal
	TotalExpenses      decimal.Decimal
	WeeklyProfit       decimal.Decimal
	DailyAverageSales  decimal.Decimal
	DailyAverageProfit decimal.Decimal
}

// GetWeeklyReportUseCase computes sales, expenses and profit over the
// Monday-Sunday week containing a reference date.
type GetWeeklyReportUseCase struct {
	reportRepo Repository
}

// NewGetWeeklyReportUseCase creates a new GetWeeklyReportUseCase instance.
func NewGetWeeklyReportUseCase(reportRepo Repository) *GetWeeklyReportUseCase {
	return &GetWeeklyReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the weekly report.
func (uc *GetWeeklyReportUseCase) Execute(ctx context.Context, input GetWeeklyReportInput) (*GetWeeklyReportOutput, error) {
	ref, err := ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	period := WeekBounds(ref)

	totalSales, err := uc.reportRepo.SumSales(ctx, input.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}

	totalExpenses, err := uc.reportRepo.SumExpenses(ctx, input.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	weeklyProfit := totalSales.Sub(totalExpenses)
	divisor := decimal.NewFromInt(daysPerWeek)

	return &GetWeeklyReportOutput{
		Period:             period,
		TotalSales:         totalSales,
		TotalExpenses:      totalExpenses,
		WeeklyProfit:       weeklyProfit,
		DailyAverageSales:  totalSales.Div(divisor),
		DailyAverageProfit: weeklyProfit.Div(divisor),
	}, nil
}
