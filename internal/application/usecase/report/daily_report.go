// Package report contains the report aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetDailyReportInput represents the input for the daily report.
// Date selects a single day; otherwise StartDate/EndDate select a range.
type GetDailyReportInput struct {
	BusinessID uuid.UUID
	Date       string
	StartDate  string
	EndDate    string
}

// GetDailyReportOutput represents the daily report. SingleDay reports
// a lone date; range variants report the full period.
type GetDailyReportOutput struct {
	Period        Period
	SingleDay     bool
	TotalSales    decimal.Decimal
	TotalExpenses decimal.Decimal
	DailyProfit   decimal.Decimal
	TopProducts   []ProductSalesStat
}

// GetDailyReportUseCase computes totals and the per-product sales
// ranking for a single day or an explicit range.
type GetDailyReportUseCase struct {
	reportRepo Repository
}

// NewGetDailyReportUseCase creates a new GetDailyReportUseCase instance.
func NewGetDailyReportUseCase(reportRepo Repository) *GetDailyReportUseCase {
	return &GetDailyReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the daily report.
func (uc *GetDailyReportUseCase) Execute(ctx context.Context, input GetDailyReportInput) (*GetDailyReportOutput, error) {
	period, singleDay, err := uc.resolvePeriod(input)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := uc.reportRepo.SumExpenses(ctx, input.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	totalSales, err := uc.reportRepo.SumSales(ctx, input.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}

	topProducts, err := uc.reportRepo.ProductSalesStats(ctx, input.BusinessID, period.Start, period.End, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get product sales stats: %w", err)
	}

	return &GetDailyReportOutput{
		Period:        period,
		SingleDay:     singleDay,
		TotalSales:    totalSales,
		TotalExpenses: totalExpenses,
		DailyProfit:   totalSales.Sub(totalExpenses),
		TopProducts:   topProducts,
	}, nil
}

// resolvePeriod prefers the single-date selector; without it the
// explicit range is required in full.
func (uc *GetDailyReportUseCase) resolvePeriod(input GetDailyReportInput) (Period, bool, error) {
	if input.Date != "" {
		date, err := ParseDate(input.Date)
		if err != nil {
			return Period{}, false, err
		}
		return Period{Start: date, End: date}, true, nil
	}

	period, err := ParseRange(input.StartDate, input.EndDate)
	if err != nil {
		return Period{}, false, err
	}
	return period, false, nil
}
