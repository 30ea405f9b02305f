// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ops-tracker/backend/internal/application/usecase/report"
)

// reportRepository implements the report.Repository interface with raw
// aggregate queries. Every query filters on business_id and an
// inclusive date range, and coalesces empty aggregates to zero.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{
		db: db,
	}
}

// SumSales returns the total sale revenue in the range.
func (r *reportRepository) SumSales(ctx context.Context, businessID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(quantity * unit_price), 0) as total
		FROM sales
		WHERE business_id = ?
			AND date BETWEEN ? AND ?
	`, businessID, start, end).Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum sales: %w", err)
	}

	return result.Total, nil
}

// SumExpenses returns the total expense amount in the range.
func (r *reportRepository) SumExpenses(ctx context.Context, businessID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0) as total
		FROM expenses
		WHERE business_id = ?
			AND date BETWEEN ? AND ?
	`, businessID, start, end).Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return result.Total, nil
}

// ProductProfitability returns one row per product of the business.
// Sales and production are aggregated in independent grouped
// subqueries before joining, so a product with several sales and
// several batches is never double counted.
func (r *reportRepository) ProductProfitability(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]report.ProfitabilityRow, error) {
	var results []struct {
		ProductID      uuid.UUID       `gorm:"column:product_id"`
		Name           string          `gorm:"column:name"`
		QuantitySold   int             `gorm:"column:quantity_sold"`
		TotalSales     decimal.Decimal `gorm:"column:total_sales"`
		ProductionCost decimal.Decimal `gorm:"column:production_cost"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as name,
			COALESCE(s.quantity_sold, 0) as quantity_sold,
			COALESCE(s.total_sales, 0) as total_sales,
			COALESCE(b.production_cost, 0) as production_cost
		FROM products p
		LEFT JOIN (
			SELECT product_id,
				SUM(quantity) as quantity_sold,
				SUM(quantity * unit_price) as total_sales
			FROM sales
			WHERE business_id = ? AND date BETWEEN ? AND ?
			GROUP BY product_id
		) s ON s.product_id = p.id
		LEFT JOIN (
			SELECT product_id,
				SUM(quantity * unit_cost) as production_cost
			FROM production_batches
			WHERE business_id = ? AND date BETWEEN ? AND ?
			GROUP BY product_id
		) b ON b.product_id = p.id
		WHERE p.business_id = ?
		ORDER BY COALESCE(s.total_sales, 0) - COALESCE(b.production_cost, 0) DESC, p.name ASC
	`, businessID, start, end, businessID, start, end, businessID).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute product profitability: %w", err)
	}

	rows := make([]report.ProfitabilityRow, len(results))
	for i, res := range results {
		rows[i] = report.ProfitabilityRow{
			ProductID:      res.ProductID,
			Name:           res.Name,
			QuantitySold:   res.QuantitySold,
			TotalSales:     res.TotalSales,
			ProductionCost: res.ProductionCost,
			Profit:         res.TotalSales.Sub(res.ProductionCost),
		}
	}
	return rows, nil
}

// DayTotals returns per-date sales and expense totals for dates with
// activity, ordered by date. Sales and expenses are aggregated per
// table first and merged on the date.
func (r *reportRepository) DayTotals(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]report.DayTotal, error) {
	var results []struct {
		Date     time.Time       `gorm:"column:date"`
		Sales    decimal.Decimal `gorm:"column:sales"`
		Expenses decimal.Decimal `gorm:"column:expenses"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			d.date as date,
			COALESCE(s.sales, 0) as sales,
			COALESCE(e.expenses, 0) as expenses
		FROM (
			SELECT date FROM sales WHERE business_id = ? AND date BETWEEN ? AND ?
			UNION
			SELECT date FROM expenses WHERE business_id = ? AND date BETWEEN ? AND ?
		) d
		LEFT JOIN (
			SELECT date, SUM(quantity * unit_price) as sales
			FROM sales
			WHERE business_id = ? AND date BETWEEN ? AND ?
			GROUP BY date
		) s ON s.date = d.date
		LEFT JOIN (
			SELECT date, SUM(amount) as expenses
			FROM expenses
			WHERE business_id = ? AND date BETWEEN ? AND ?
			GROUP BY date
		) e ON e.date = d.date
		ORDER BY d.date ASC
	`, businessID, start, end, businessID, start, end,
		businessID, start, end, businessID, start, end).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get day totals: %w", err)
	}

	totals := make([]report.DayTotal, len(results))
	for i, res := range results {
		totals[i] = report.DayTotal{
			Date:     res.Date,
			Sales:    res.Sales,
			Expenses: res.Expenses,
		}
	}
	return totals, nil
}

// ProductSalesStats returns per-product quantity and revenue for sales
// in the range, ordered by revenue descending.
func (r *reportRepository) ProductSalesStats(ctx context.Context, businessID uuid.UUID, start, end time.Time, limit int) ([]report.ProductSalesStat, error) {
	var results []struct {
		ProductID     uuid.UUID       `gorm:"column:product_id"`
		Name          string          `gorm:"column:name"`
		TotalQuantity int             `gorm:"column:total_quantity"`
		TotalRevenue  decimal.Decimal `gorm:"column:total_revenue"`
	}

	query := r.db.WithContext(ctx).Raw(`
		SELECT
			s.product_id as product_id,
			p.name as name,
			SUM(s.quantity) as total_quantity,
			SUM(s.quantity * s.unit_price) as total_revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.business_id = ? AND s.date BETWEEN ? AND ?
		GROUP BY s.product_id, p.name
		ORDER BY total_revenue DESC, p.name ASC
	`, businessID, start, end)
	if err := query.Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to get product sales stats: %w", err)
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	stats := make([]report.ProductSalesStat, len(results))
	for i, res := range results {
		stats[i] = report.ProductSalesStat{
			ProductID:     res.ProductID,
			Name:          res.Name,
			TotalQuantity: res.TotalQuantity,
			TotalRevenue:  res.TotalRevenue,
		}
	}
	return stats, nil
}

// SaleLines returns every sale line item in the range with its product name.
func (r *reportRepository) SaleLines(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]report.SaleLine, error) {
	var results []struct {
		Date        time.Time       `gorm:"column:date"`
		ProductName string          `gorm:"column:product_name"`
		Quantity    int             `gorm:"column:quantity"`
		UnitPrice   decimal.Decimal `gorm:"column:unit_price"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT s.date as date, p.name as product_name, s.quantity as quantity, s.unit_price as unit_price
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.business_id = ? AND s.date BETWEEN ? AND ?
		ORDER BY s.date ASC, p.name ASC
	`, businessID, start, end).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get sale lines: %w", err)
	}

	lines := make([]report.SaleLine, len(results))
	for i, res := range results {
		quantity := decimal.NewFromInt(int64(res.Quantity))
		lines[i] = report.SaleLine{
			Date:        res.Date,
			ProductName: res.ProductName,
			Quantity:    res.Quantity,
			UnitPrice:   res.UnitPrice,
			Total:       res.UnitPrice.Mul(quantity),
		}
	}
	return lines, nil
}

// ExpenseLines returns every expense line item in the range.
func (r *reportRepository) ExpenseLines(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]report.ExpenseLine, error) {
	var results []struct {
		Date        time.Time       `gorm:"column:date"`
		Description string          `gorm:"column:description"`
		Amount      decimal.Decimal `gorm:"column:amount"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT date, description, amount
		FROM expenses
		WHERE business_id = ? AND date BETWEEN ? AND ?
		ORDER BY date ASC, created_at ASC
	`, businessID, start, end).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get expense lines: %w", err)
	}

	lines := make([]report.ExpenseLine, len(results))
	for i, res := range results {
		lines[i] = report.ExpenseLine{
			Date:        res.Date,
			Description: res.Description,
			Amount:      res.Amount,
		}
	}
	return lines, nil
}

// ProductionLines returns every production line item in the range with
// its product name.
func (r *reportRepository) ProductionLines(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]report.ProductionLine, error) {
	var results []struct {
		Date        time.Time       `gorm:"column:date"`
		ProductName string          `gorm:"column:product_name"`
		Quantity    int             `gorm:"column:quantity"`
		UnitCost    decimal.Decimal `gorm:"column:unit_cost"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT b.date as date, p.name as product_name, b.quantity as quantity, b.unit_cost as unit_cost
		FROM production_batches b
		JOIN products p ON p.id = b.product_id
		WHERE b.business_id = ? AND b.date BETWEEN ? AND ?
		ORDER BY b.date ASC, p.name ASC
	`, businessID, start, end).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get production lines: %w", err)
	}

	lines := make([]report.ProductionLine, len(results))
	for i, res := range results {
		quantity := decimal.NewFromInt(int64(res.Quantity))
		lines[i] = report.ProductionLine{
			Date:        res.Date,
			ProductName: res.ProductName,
			Quantity:    res.Quantity,
			UnitCost:    res.UnitCost,
			TotalCost:   res.UnitCost.Mul(quantity),
		}
	}
	return lines, nil
}
