// Package report contains the report aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrendPoint is a per-date aggregate of sales, expenses and profit.
type TrendPoint struct {
	Date     time.Time
	Sales    decimal.Decimal
	Expenses decimal.Decimal
	Profit   decimal.Decimal
}

// GetDailyTrendInput represents the input for the daily trend.
type GetDailyTrendInput struct {
	BusinessID uuid.UUID
	StartDate  string
	EndDate    string
}

// GetDailyTrendOutput represents the daily trend series.
type GetDailyTrendOutput struct {
	Period    Period
	DailyData []TrendPoint
}

// GetDailyTrendUseCase produces one trend point per calendar day in a
// range, ordered by date ascending. Days with no recorded activity
// appear with zero values so chart consumers get a gapless series.
type GetDailyTrendUseCase struct {
	reportRepo Repository
}

// NewGetDailyTrendUseCase creates a new GetDailyTrendUseCase instance.
func NewGetDailyTrendUseCase(reportRepo Repository) *GetDailyTrendUseCase {
	return &GetDailyTrendUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the daily trend.
func (uc *GetDailyTrendUseCase) Execute(ctx context.Context, input GetDailyTrendInput) (*GetDailyTrendOutput, error) {
	period, err := ParseRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	totals, err := uc.reportRepo.DayTotals(ctx, input.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get day totals: %w", err)
	}

	return &GetDailyTrendOutput{
		Period:    period,
		DailyData: fillDays(period, totals),
	}, nil
}

// fillDays expands raw per-date totals into a point for every calendar
// day of the period, zero-filling days without activity.
func fillDays(period Period, totals []DayTotal) []TrendPoint {
	byDate := make(map[string]DayTotal, len(totals))
	for _, t := range totals {
		byDate[t.Date.Format(DateLayout)] = t
	}

	points := make([]TrendPoint, 0, period.Days())
	for day := period.Start; !day.After(period.End); day = day.AddDate(0, 0, 1) {
		point := TrendPoint{
			Date:     day,
			Sales:    decimal.Zero,
			Expenses: decimal.Zero,
			Profit:   decimal.Zero,
		}
		if t, ok := byDate[day.Format(DateLayout)]; ok {
			point.Sales = t.Sales
			point.Expenses = t.Expenses
			point.Profit = t.Sales.Sub(t.Expenses)
		}
		points = append(points, point)
	}
	return points
}
