// Package report contains the report aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// GetDetailedReportInput represents the input for a detailed report.
// Which selector is required depends on Kind: weekly takes Date,
// monthly takes Month, the rest take StartDate/EndDate.
type GetDetailedReportInput struct {
	BusinessID uuid.UUID
	Kind       Kind
	Date       string
	Month      string
	StartDate  string
	EndDate    string
}

// ReportDetails carries the raw line items backing a summary, a
// zero-filled per-day summary of the period, and, for the weekly and
// monthly kinds, the per-product sales ranking.
type ReportDetails struct {
	Sales        []SaleLine
	Expenses     []ExpenseLine
	Production   []ProductionLine
	DailySummary []TrendPoint
	TopProducts  []ProductSalesStat
}

// GetDetailedReportOutput pairs a report summary with its line items.
// Exactly one summary field is populated, matching Kind.
type GetDetailedReportOutput struct {
	Kind           Kind
	Period         Period
	Weekly         *GetWeeklyReportOutput
	Monthly        *GetMonthlyReportOutput
	Profitability  *GetProductProfitabilityOutput
	Trend          *GetDailyTrendOutput
	MostProfitable *GetMostProfitableOutput
	Details        ReportDetails
}

// GetDetailedReportUseCase produces any report variant together with
// every sale, expense and production record that contributed to it.
type GetDetailedReportUseCase struct {
	reportRepo     Repository
	weekly         *GetWeeklyReportUseCase
	monthly        *GetMonthlyReportUseCase
	profitability  *GetProductProfitabilityUseCase
	trend          *GetDailyTrendUseCase
	mostProfitable *GetMostProfitableUseCase
}

// NewGetDetailedReportUseCase creates a new GetDetailedReportUseCase instance.
func NewGetDetailedReportUseCase(reportRepo Repository) *GetDetailedReportUseCase {
	return &GetDetailedReportUseCase{
		reportRepo:     reportRepo,
		weekly:         NewGetWeeklyReportUseCase(reportRepo),
		monthly:        NewGetMonthlyReportUseCase(reportRepo),
		profitability:  NewGetProductProfitabilityUseCase(reportRepo),
		trend:          NewGetDailyTrendUseCase(reportRepo),
		mostProfitable: NewGetMostProfitableUseCase(reportRepo),
	}
}

// Execute computes the requested summary, then loads its line items.
func (uc *GetDetailedReportUseCase) Execute(ctx context.Context, input GetDetailedReportInput) (*GetDetailedReportOutput, error) {
	output, err := uc.summarize(ctx, input)
	if err != nil {
		return nil, err
	}

	details, err := uc.loadDetails(ctx, input.BusinessID, input.Kind, output.Period)
	if err != nil {
		return nil, err
	}
	output.Details = details

	return output, nil
}

func (uc *GetDetailedReportUseCase) summarize(ctx context.Context, input GetDetailedReportInput) (*GetDetailedReportOutput, error) {
	switch input.Kind {
	case KindWeekly:
		summary, err := uc.weekly.Execute(ctx, GetWeeklyReportInput{
			BusinessID: input.BusinessID,
			Date:       input.Date,
		})
		if err != nil {
			return nil, err
		}
		return &GetDetailedReportOutput{Kind: input.Kind, Period: summary.Period, Weekly: summary}, nil

	case KindMonthly:
		summary, err := uc.monthly.Execute(ctx, GetMonthlyReportInput{
			BusinessID: input.BusinessID,
			Month:      input.Month,
		})
		if err != nil {
			return nil, err
		}
		return &GetDetailedReportOutput{Kind: input.Kind, Period: summary.Period, Monthly: summary}, nil

	case KindProfitability:
		summary, err := uc.profitability.Execute(ctx, GetProductProfitabilityInput{
			BusinessID: input.BusinessID,
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
		})
		if err != nil {
			return nil, err
		}
		return &GetDetailedReportOutput{Kind: input.Kind, Period: summary.Period, Profitability: summary}, nil

	case KindTrend:
		summary, err := uc.trend.Execute(ctx, GetDailyTrendInput{
			BusinessID: input.BusinessID,
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
		})
		if err != nil {
			return nil, err
		}
		return &GetDetailedReportOutput{Kind: input.Kind, Period: summary.Period, Trend: summary}, nil

	case KindMostProfitable:
		summary, err := uc.mostProfitable.Execute(ctx, GetMostProfitableInput{
			BusinessID: input.BusinessID,
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
		})
		if err != nil {
			return nil, err
		}
		return &GetDetailedReportOutput{Kind: input.Kind, Period: summary.Period, MostProfitable: summary}, nil

	default:
		_, err := ParseKind(string(input.Kind))
		return nil, err
	}
}

func (uc *GetDetailedReportUseCase) loadDetails(ctx context.Context, businessID uuid.UUID, kind Kind, period Period) (ReportDetails, error) {
	sales, err := uc.reportRepo.SaleLines(ctx, businessID, period.Start, period.End)
	if err != nil {
		return ReportDetails{}, fmt.Errorf("failed to get sale lines: %w", err)
	}

	expenses, err := uc.reportRepo.ExpenseLines(ctx, businessID, period.Start, period.End)
	if err != nil {
		return ReportDetails{}, fmt.Errorf("failed to get expense lines: %w", err)
	}

	production, err := uc.reportRepo.ProductionLines(ctx, businessID, period.Start, period.End)
	if err != nil {
		return ReportDetails{}, fmt.Errorf("failed to get production lines: %w", err)
	}

	totals, err := uc.reportRepo.DayTotals(ctx, businessID, period.Start, period.End)
	if err != nil {
		return ReportDetails{}, fmt.Errorf("failed to get day totals: %w", err)
	}

	details := ReportDetails{
		Sales:        sales,
		Expenses:     expenses,
		Production:   production,
		DailySummary: fillDays(period, totals),
	}

	if kind == KindWeekly || kind == KindMonthly {
		topProducts, err := uc.reportRepo.ProductSalesStats(ctx, businessID, period.Start, period.End, 0)
		if err != nil {
			return ReportDetails{}, fmt.Errorf("failed to get product sales stats: %w", err)
		}
		details.TopProducts = topProducts
	}

	return details, nil
}
