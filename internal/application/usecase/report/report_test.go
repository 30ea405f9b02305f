package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/ops-tracker/backend/internal/domain/error"
)

// stubRepository lets each test script the aggregate queries; unset
// functions return empty results.
type stubRepository struct {
	sumSales             func(start, end time.Time) (decimal.Decimal, error)
	sumExpenses          func(start, end time.Time) (decimal.Decimal, error)
	productProfitability func(start, end time.Time) ([]ProfitabilityRow, error)
	dayTotals            func(start, end time.Time) ([]DayTotal, error)
	productSalesStats    func(start, end time.Time, limit int) ([]ProductSalesStat, error)
	saleLines            func(start, end time.Time) ([]SaleLine, error)
	expenseLines         func(start, end time.Time) ([]ExpenseLine, error)
	productionLines      func(start, end time.Time) ([]ProductionLine, error)
}

func (s *stubRepository) SumSales(_ context.Context, _ uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	if s.sumSales == nil {
		return decimal.Zero, nil
	}
	return s.sumSales(start, end)
}

func (s *stubRepository) SumExpenses(_ context.Context, _ uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	if s.sumExpenses == nil {
		return decimal.Zero, nil
	}
	return s.sumExpenses(start, end)
}

func (s *stubRepository) ProductProfitability(_ context.Context, _ uuid.UUID, start, end time.Time) ([]ProfitabilityRow, error) {
	if s.productProfitability == nil {
		return nil, nil
	}
	return s.productProfitability(start, end)
}

func (s *stubRepository) DayTotals(_ context.Context, _ uuid.UUID, start, end time.Time) ([]DayTotal, error) {
	if s.dayTotals == nil {
		return nil, nil
	}
	return s.dayTotals(start, end)
}

func (s *stubRepository) ProductSalesStats(_ context.Context, _ uuid.UUID, start, end time.Time, limit int) ([]ProductSalesStat, error) {
	if s.productSalesStats == nil {
		return nil, nil
	}
	return s.productSalesStats(start, end, limit)
}

func (s *stubRepository) SaleLines(_ context.Context, _ uuid.UUID, start, end time.Time) ([]SaleLine, error) {
	if s.saleLines == nil {
		return nil, nil
	}
	return s.saleLines(start, end)
}

func (s *stubRepository) ExpenseLines(_ context.Context, _ uuid.UUID, start, end time.Time) ([]ExpenseLine, error) {
	if s.expenseLines == nil {
		return nil, nil
	}
	return s.expenseLines(start, end)
}

func (s *stubRepository) ProductionLines(_ context.Context, _ uuid.UUID, start, end time.Time) ([]ProductionLine, error) {
	if s.productionLines == nil {
		return nil, nil
	}
	return s.productionLines(start, end)
}

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func assertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("expected %s %s, got %s", field, want, got.String())
	}
}

func TestGetWeeklyReportUseCase_Execute(t *testing.T) {
	businessID := uuid.New()

	t.Run("computes totals and averages over the full week", func(t *testing.T) {
		repo := &stubRepository{
			sumSales: func(start, end time.Time) (decimal.Decimal, error) {
				if !start.Equal(date("2024-06-10")) || !end.Equal(date("2024-06-16")) {
					t.Errorf("expected week 2024-06-10..2024-06-16, got %s..%s",
						start.Format(DateLayout), end.Format(DateLayout))
				}
				return dec("700.00"), nil
			},
			sumExpenses: func(_, _ time.Time) (decimal.Decimal, error) {
				return dec("280.00"), nil
			},
		}

		output, err := NewGetWeeklyReportUseCase(repo).Execute(context.Background(), GetWeeklyReportInput{
			BusinessID: businessID,
			Date:       "2024-06-12",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "total sales", output.TotalSales, "700.00")
		assertDecimal(t, "total expenses", output.TotalExpenses, "280.00")
		assertDecimal(t, "weekly profit", output.WeeklyProfit, "420.00")
		assertDecimal(t, "daily average sales", output.DailyAverageSales, "100")
		assertDecimal(t, "daily average profit", output.DailyAverageProfit, "60")
	})

	t.Run("averages divide by seven even with partial activity", func(t *testing.T) {
		// One day of activity still averages over the whole week.
		repo := &stubRepository{
			sumSales: func(_, _ time.Time) (decimal.Decimal, error) {
				return dec("70.00"), nil
			},
		}

		output, err := NewGetWeeklyReportUseCase(repo).Execute(context.Background(), GetWeeklyReportInput{
			BusinessID: businessID,
			Date:       "2024-06-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "daily average sales", output.DailyAverageSales, "10")
		assertDecimal(t, "daily average profit", output.DailyAverageProfit, "10")
	})

	t.Run("zero activity yields zero results", func(t *testing.T) {
		output, err := NewGetWeeklyReportUseCase(&stubRepository{}).Execute(context.Background(), GetWeeklyReportInput{
			BusinessID: businessID,
			Date:       "2024-06-12",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "total sales", output.TotalSales, "0")
		assertDecimal(t, "weekly profit", output.WeeklyProfit, "0")
		assertDecimal(t, "daily average profit", output.DailyAverageProfit, "0")
	})

	t.Run("rejects a missing date", func(t *testing.T) {
		_, err := NewGetWeeklyReportUseCase(&stubRepository{}).Execute(context.Background(), GetWeeklyReportInput{
			BusinessID: businessID,
		})
		if !errors.Is(err, domainerror.ErrMissingDate) {
			t.Errorf("expected ErrMissingDate, got %v", err)
		}
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repoErr := errors.New("connection reset")
		repo := &stubRepository{
			sumSales: func(_, _ time.Time) (decimal.Decimal, error) {
				return decimal.Zero, repoErr
			},
		}

		_, err := NewGetWeeklyReportUseCase(repo).Execute(context.Background(), GetWeeklyReportInput{
			BusinessID: businessID,
			Date:       "2024-06-12",
		})
		if !errors.Is(err, repoErr) {
			t.Errorf("expected wrapped repository error, got %v", err)
		}
	})
}

func TestGetMonthlyReportUseCase_Execute(t *testing.T) {
	businessID := uuid.New()

	t.Run("daily average divides by the days in the month", func(t *testing.T) {
		repo := &stubRepository{
			sumSales: func(start, end time.Time) (decimal.Decimal, error) {
				if !start.Equal(date("2024-02-01")) || !end.Equal(date("2024-02-29")) {
					t.Errorf("expected leap february bounds, got %s..%s",
						start.Format(DateLayout), end.Format(DateLayout))
				}
				return dec("580.00"), nil
			},
		}

		output, err := NewGetMonthlyReportUseCase(repo).Execute(context.Background(), GetMonthlyReportInput{
			BusinessID: businessID,
			Month:      "2024-02",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.DaysInMonth != 29 {
			t.Errorf("expected 29 days, got %d", output.DaysInMonth)
		}
		assertDecimal(t, "monthly profit", output.MonthlyProfit, "580.00")
		assertDecimal(t, "daily average", output.DailyAverage, "20")
	})

	t.Run("profit can be negative", func(t *testing.T) {
		repo := &stubRepository{
			sumSales: func(_, _ time.Time) (decimal.Decimal, error) {
				return dec("100.00"), nil
			},
			sumExpenses: func(_, _ time.Time) (decimal.Decimal, error) {
				return dec("400.00"), nil
			},
		}

		output, err := NewGetMonthlyReportUseCase(repo).Execute(context.Background(), GetMonthlyReportInput{
			BusinessID: businessID,
			Month:      "2024-06",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "monthly profit", output.MonthlyProfit, "-300.00")
		assertDecimal(t, "daily average", output.DailyAverage, "-10")
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		_, err := NewGetMonthlyReportUseCase(&stubRepository{}).Execute(context.Background(), GetMonthlyReportInput{
			BusinessID: businessID,
			Month:      "June 2024",
		})
		if !errors.Is(err, domainerror.ErrInvalidMonthFormat) {
			t.Errorf("expected ErrInvalidMonthFormat, got %v", err)
		}
	})
}

func TestGetMostProfitableUseCase_Execute(t *testing.T) {
	businessID := uuid.New()
	input := GetMostProfitableInput{
		BusinessID: businessID,
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-30",
	}

	t.Run("picks the top strictly positive profit", func(t *testing.T) {
		repo := &stubRepository{
			productProfitability: func(_, _ time.Time) ([]ProfitabilityRow, error) {
				return []ProfitabilityRow{
					{Name: "Sourdough Loaf", Profit: dec("120.50")},
					{Name: "Croissant", Profit: dec("40.00")},
					{Name: "Day-old Bread", Profit: dec("-15.00")},
				}, nil
			},
		}

		output, err := NewGetMostProfitableUseCase(repo).Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Product == nil {
			t.Fatal("expected a product, got nil")
		}
		if output.Product.Name != "Sourdough Loaf" {
			t.Errorf("expected Sourdough Loaf, got %s", output.Product.Name)
		}
		if output.Message != "" {
			t.Errorf("expected no message, got %q", output.Message)
		}
	})

	t.Run("skips rows without positive profit", func(t *testing.T) {
		repo := &stubRepository{
			productProfitability: func(_, _ time.Time) ([]ProfitabilityRow, error) {
				return []ProfitabilityRow{
					{Name: "Break-even", Profit: decimal.Zero},
					{Name: "Loss-maker", Profit: dec("-50.00")},
					{Name: "Small Win", Profit: dec("0.01")},
				}, nil
			},
		}

		output, err := NewGetMostProfitableUseCase(repo).Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Product == nil || output.Product.Name != "Small Win" {
			t.Fatalf("expected Small Win, got %+v", output.Product)
		}
	})

	t.Run("no profitable product is a result, not an error", func(t *testing.T) {
		repo := &stubRepository{
			productProfitability: func(_, _ time.Time) ([]ProfitabilityRow, error) {
				return []ProfitabilityRow{
					{Name: "Break-even", Profit: decimal.Zero},
					{Name: "Loss-maker", Profit: dec("-50.00")},
				}, nil
			},
		}

		output, err := NewGetMostProfitableUseCase(repo).Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Product != nil {
			t.Errorf("expected nil product, got %+v", output.Product)
		}
		if output.Message != NoProfitableProductMessage {
			t.Errorf("expected message %q, got %q", NoProfitableProductMessage, output.Message)
		}
	})

	t.Run("rejects a reversed range", func(t *testing.T) {
		_, err := NewGetMostProfitableUseCase(&stubRepository{}).Execute(context.Background(), GetMostProfitableInput{
			BusinessID: businessID,
			StartDate:  "2024-06-30",
			EndDate:    "2024-06-01",
		})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestGetProductProfitabilityUseCase_Execute(t *testing.T) {
	repo := &stubRepository{
		productProfitability: func(_, _ time.Time) ([]ProfitabilityRow, error) {
			return []ProfitabilityRow{
				{Name: "Sourdough Loaf", QuantitySold: 40, TotalSales: dec("200.00"), ProductionCost: dec("80.00"), Profit: dec("120.00")},
				{Name: "Idle Product", QuantitySold: 0, TotalSales: decimal.Zero, ProductionCost: decimal.Zero, Profit: decimal.Zero},
			}, nil
		},
	}

	output, err := NewGetProductProfitabilityUseCase(repo).Execute(context.Background(), GetProductProfitabilityInput{
		BusinessID: uuid.New(),
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Products) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(output.Products))
	}
	// Products without activity stay in the table with zero aggregates.
	idle := output.Products[1]
	if idle.Name != "Idle Product" || !idle.Profit.IsZero() {
		t.Errorf("expected zero-aggregate idle row, got %+v", idle)
	}
}

func TestGetDailyTrendUseCase_Execute(t *testing.T) {
	businessID := uuid.New()

	t.Run("zero-fills days without activity", func(t *testing.T) {
		repo := &stubRepository{
			dayTotals: func(_, _ time.Time) ([]DayTotal, error) {
				return []DayTotal{
					{Date: date("2024-06-01"), Sales: dec("50.00"), Expenses: dec("20.00")},
					{Date: date("2024-06-03"), Sales: decimal.Zero, Expenses: dec("35.00")},
				}, nil
			},
		}

		output, err := NewGetDailyTrendUseCase(repo).Execute(context.Background(), GetDailyTrendInput{
			BusinessID: businessID,
			StartDate:  "2024-06-01",
			EndDate:    "2024-06-05",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.DailyData) != 5 {
			t.Fatalf("expected 5 points, got %d", len(output.DailyData))
		}

		first := output.DailyData[0]
		assertDecimal(t, "day 1 sales", first.Sales, "50.00")
		assertDecimal(t, "day 1 profit", first.Profit, "30.00")

		gap := output.DailyData[1]
		if !gap.Date.Equal(date("2024-06-02")) {
			t.Errorf("expected gap point on 2024-06-02, got %s", gap.Date.Format(DateLayout))
		}
		if !gap.Sales.IsZero() || !gap.Expenses.IsZero() || !gap.Profit.IsZero() {
			t.Errorf("expected zero-filled gap point, got %+v", gap)
		}

		expenseOnly := output.DailyData[2]
		assertDecimal(t, "day 3 profit", expenseOnly.Profit, "-35.00")
	})

	t.Run("points arrive in date order", func(t *testing.T) {
		output, err := NewGetDailyTrendUseCase(&stubRepository{}).Execute(context.Background(), GetDailyTrendInput{
			BusinessID: businessID,
			StartDate:  "2024-06-28",
			EndDate:    "2024-07-02",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.DailyData) != 5 {
			t.Fatalf("expected 5 points, got %d", len(output.DailyData))
		}
		for i := 1; i < len(output.DailyData); i++ {
			if !output.DailyData[i].Date.After(output.DailyData[i-1].Date) {
				t.Errorf("points out of order at index %d", i)
			}
		}
	})
}

func TestGetDailyReportUseCase_Execute(t *testing.T) {
	businessID := uuid.New()

	t.Run("single date collapses to a one-day period", func(t *testing.T) {
		repo := &stubRepository{
			sumSales: func(start, end time.Time) (decimal.Decimal, error) {
				if !start.Equal(end) {
					t.Errorf("expected single-day bounds, got %s..%s",
						start.Format(DateLayout), end.Format(DateLayout))
				}
				return dec("90.00"), nil
			},
			sumExpenses: func(_, _ time.Time) (decimal.Decimal, error) {
				return dec("120.00"), nil
			},
			productSalesStats: func(_, _ time.Time, limit int) ([]ProductSalesStat, error) {
				if limit != 0 {
					t.Errorf("expected unlimited stats, got limit %d", limit)
				}
				return []ProductSalesStat{{Name: "Croissant", TotalQuantity: 12, TotalRevenue: dec("90.00")}}, nil
			},
		}

		output, err := NewGetDailyReportUseCase(repo).Execute(context.Background(), GetDailyReportInput{
			BusinessID: businessID,
			Date:       "2024-06-12",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.SingleDay {
			t.Error("expected a single-day report")
		}
		assertDecimal(t, "daily profit", output.DailyProfit, "-30.00")
		if len(output.TopProducts) != 1 || output.TopProducts[0].Name != "Croissant" {
			t.Errorf("unexpected top products: %+v", output.TopProducts)
		}
	})

	t.Run("date takes precedence over a range", func(t *testing.T) {
		repo := &stubRepository{
			sumSales: func(start, end time.Time) (decimal.Decimal, error) {
				if !start.Equal(date("2024-06-12")) || !end.Equal(date("2024-06-12")) {
					t.Errorf("expected the single date to win, got %s..%s",
						start.Format(DateLayout), end.Format(DateLayout))
				}
				return decimal.Zero, nil
			},
		}

		output, err := NewGetDailyReportUseCase(repo).Execute(context.Background(), GetDailyReportInput{
			BusinessID: businessID,
			Date:       "2024-06-12",
			StartDate:  "2024-06-01",
			EndDate:    "2024-06-30",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.SingleDay {
			t.Error("expected a single-day report")
		}
	})

	t.Run("range without date is a range report", func(t *testing.T) {
		output, err := NewGetDailyReportUseCase(&stubRepository{}).Execute(context.Background(), GetDailyReportInput{
			BusinessID: businessID,
			StartDate:  "2024-06-01",
			EndDate:    "2024-06-30",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.SingleDay {
			t.Error("expected a range report")
		}
		if output.Period.Days() != 30 {
			t.Errorf("expected 30 days, got %d", output.Period.Days())
		}
	})

	t.Run("neither date nor range is rejected", func(t *testing.T) {
		_, err := NewGetDailyReportUseCase(&stubRepository{}).Execute(context.Background(), GetDailyReportInput{
			BusinessID: businessID,
		})
		if !errors.Is(err, domainerror.ErrMissingStartDate) {
			t.Errorf("expected ErrMissingStartDate, got %v", err)
		}
	})
}

func TestGetDetailedReportUseCase_Execute(t *testing.T) {
	businessID := uuid.New()
	repo := &stubRepository{
		sumSales: func(_, _ time.Time) (decimal.Decimal, error) {
			return dec("140.00"), nil
		},
		saleLines: func(start, end time.Time) ([]SaleLine, error) {
			if !start.Equal(date("2024-06-10")) || !end.Equal(date("2024-06-16")) {
				t.Errorf("expected line items over the resolved week, got %s..%s",
					start.Format(DateLayout), end.Format(DateLayout))
			}
			return []SaleLine{{Date: date("2024-06-12"), ProductName: "Croissant", Quantity: 4, UnitPrice: dec("35.00"), Total: dec("140.00")}}, nil
		},
		expenseLines: func(_, _ time.Time) ([]ExpenseLine, error) {
			return []ExpenseLine{{Date: date("2024-06-11"), Description: "Flour", Amount: dec("60.00")}}, nil
		},
		dayTotals: func(_, _ time.Time) ([]DayTotal, error) {
			return []DayTotal{{Date: date("2024-06-12"), Sales: dec("140.00"), Expenses: dec("60.00")}}, nil
		},
		productSalesStats: func(_, _ time.Time, _ int) ([]ProductSalesStat, error) {
			return []ProductSalesStat{{Name: "Croissant", TotalQuantity: 4, TotalRevenue: dec("140.00")}}, nil
		},
	}

	t.Run("weekly detailed pairs the summary with line items", func(t *testing.T) {
		output, err := NewGetDetailedReportUseCase(repo).Execute(context.Background(), GetDetailedReportInput{
			BusinessID: businessID,
			Kind:       KindWeekly,
			Date:       "2024-06-12",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Weekly == nil {
			t.Fatal("expected weekly summary")
		}
		if output.Monthly != nil || output.Profitability != nil || output.Trend != nil || output.MostProfitable != nil {
			t.Error("expected only the weekly summary to be set")
		}
		assertDecimal(t, "weekly total sales", output.Weekly.TotalSales, "140.00")
		if len(output.Details.Sales) != 1 || len(output.Details.Expenses) != 1 {
			t.Errorf("unexpected details: %+v", output.Details)
		}
		if len(output.Details.Production) != 0 {
			t.Errorf("expected no production lines, got %d", len(output.Details.Production))
		}

		// The per-day summary covers every day of the resolved week,
		// zero-filled outside the one active day.
		if len(output.Details.DailySummary) != 7 {
			t.Fatalf("expected 7 summary days, got %d", len(output.Details.DailySummary))
		}
		wednesday := output.Details.DailySummary[2]
		if !wednesday.Date.Equal(date("2024-06-12")) {
			t.Errorf("expected 2024-06-12 third, got %s", wednesday.Date.Format(DateLayout))
		}
		assertDecimal(t, "summary day profit", wednesday.Profit, "80.00")
		if !output.Details.DailySummary[0].Sales.IsZero() {
			t.Errorf("expected zero-filled Monday, got %s", output.Details.DailySummary[0].Sales)
		}

		if len(output.Details.TopProducts) != 1 || output.Details.TopProducts[0].Name != "Croissant" {
			t.Errorf("unexpected top products: %+v", output.Details.TopProducts)
		}
	})

	t.Run("trend detailed resolves the explicit range", func(t *testing.T) {
		output, err := NewGetDetailedReportUseCase(&stubRepository{}).Execute(context.Background(), GetDetailedReportInput{
			BusinessID: businessID,
			Kind:       KindTrend,
			StartDate:  "2024-06-01",
			EndDate:    "2024-06-03",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Trend == nil {
			t.Fatal("expected trend summary")
		}
		if len(output.Trend.DailyData) != 3 {
			t.Errorf("expected 3 trend points, got %d", len(output.Trend.DailyData))
		}
		if len(output.Details.DailySummary) != 3 {
			t.Errorf("expected 3 summary days, got %d", len(output.Details.DailySummary))
		}
		// Only weekly and monthly reports carry the sales ranking.
		if len(output.Details.TopProducts) != 0 {
			t.Errorf("expected no top products, got %+v", output.Details.TopProducts)
		}
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := NewGetDetailedReportUseCase(&stubRepository{}).Execute(context.Background(), GetDetailedReportInput{
			BusinessID: businessID,
			Kind:       Kind("yearly"),
			Date:       "2024-06-12",
		})
		if !errors.Is(err, domainerror.ErrInvalidReportKind) {
			t.Errorf("expected ErrInvalidReportKind, got %v", err)
		}
	})

	t.Run("selector errors surface from the summary", func(t *testing.T) {
		_, err := NewGetDetailedReportUseCase(&stubRepository{}).Execute(context.Background(), GetDetailedReportInput{
			BusinessID: businessID,
			Kind:       KindMonthly,
		})
		if !errors.Is(err, domainerror.ErrMissingMonth) {
			t.Errorf("expected ErrMissingMonth, got %v", err)
		}
	})
}
