// Package report contains the report aggregation use cases.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines the read-only aggregate queries the report
// use cases run against the store. Every query is scoped to a
// business and filters dates inclusively on both bounds.
type Repository interface {
	// SumSales returns the total sale revenue (quantity x unit price)
	// in the range, or exactly zero when no sales match.
	SumSales(ctx context.Context, businessID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// SumExpenses returns the total expense amount in the range,
	// or exactly zero when no expenses match.
	SumExpenses(ctx context.Context, businessID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// ProductProfitability returns one row per product of the business,
	// including products with no activity in the range, ordered by
	// profit descending.
	ProductProfitability(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]ProfitabilityRow, error)

	// DayTotals returns per-date sales and expense totals for dates
	// with at least one sale or expense in the range, ordered by date.
	DayTotals(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]DayTotal, error)

	// ProductSalesStats returns per-product quantity and revenue for
	// sales in the range, ordered by revenue descending. A limit of
	// zero returns all products with sales.
	ProductSalesStats(ctx context.Context, businessID uuid.UUID, start, end time.Time, limit int) ([]ProductSalesStat, error)

	// SaleLines returns every sale line item in the range with its
	// product name, ordered by date then product name.
	SaleLines(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]SaleLine, error)

	// ExpenseLines returns every expense line item in the range,
	// ordered by date.
	ExpenseLines(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]ExpenseLine, error)

	// ProductionLines returns every production line item in the range
	// with its product name, ordered by date then product name.
	ProductionLines(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]ProductionLine, error)
}

// ProfitabilityRow is a per-product aggregate over a range.
type ProfitabilityRow struct {
	ProductID      uuid.UUID
	Name           string
	QuantitySold   int
	TotalSales     decimal.Decimal
	ProductionCost decimal.Decimal
	Profit         decimal.Decimal
}

// DayTotal holds raw per-date sales and expense totals.
type DayTotal struct {
	Date     time.Time
	Sales    decimal.Decimal
	Expenses decimal.Decimal
}

// ProductSalesStat is a per-product sales ranking entry.
type ProductSalesStat struct {
	ProductID     uuid.UUID
	Name          string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
}

// SaleLine is a raw sale record enriched with its product name.
type SaleLine struct {
	Date        time.Time
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// ExpenseLine is a raw expense record.
type ExpenseLine struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// ProductionLine is a raw production record enriched with its product name.
type ProductionLine struct {
	Date        time.Time
	ProductName string
	Quantity    int
	UnitCost    decimal.Decimal
	TotalCost   decimal.Decimal
}
