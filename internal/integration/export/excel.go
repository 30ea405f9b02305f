// Package export renders detailed reports as xlsx workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ops-tracker/backend/internal/application/usecase/report"
)

const dateLayout = "2006-01-02"

// ExcelExporter builds spreadsheet downloads from detailed reports.
// Every workbook has a Summary sheet matching the report kind, one
// sheet each for sale, expense and production line items, and a
// zero-filled per-day summary sheet. Weekly and monthly reports add a
// top-products sheet.
type ExcelExporter struct{}

// NewExcelExporter creates a new excel exporter instance.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export renders the detailed report into xlsx bytes.
func (e *ExcelExporter) Export(output *report.GetDetailedReportOutput) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeSummary(f, output); err != nil {
		return nil, err
	}
	if err := e.writeSales(f, output.Details.Sales); err != nil {
		return nil, err
	}
	if err := e.writeExpenses(f, output.Details.Expenses); err != nil {
		return nil, err
	}
	if err := e.writeProduction(f, output.Details.Production); err != nil {
		return nil, err
	}
	if err := e.writeDailySummary(f, output.Details.DailySummary); err != nil {
		return nil, err
	}
	if len(output.Details.TopProducts) > 0 {
		if err := e.writeTopProducts(f, output.Details.TopProducts); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ExcelExporter) writeSummary(f *excelize.File, output *report.GetDetailedReportOutput) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Report", string(output.Kind)},
		{"Start date", output.Period.Start.Format(dateLayout)},
		{"End date", output.Period.End.Format(dateLayout)},
	}

	switch {
	case output.Weekly != nil:
		rows = append(rows,
			[]interface{}{"Total sales", output.Weekly.TotalSales.StringFixed(2)},
			[]interface{}{"Total expenses", output.Weekly.TotalExpenses.StringFixed(2)},
			[]interface{}{"Weekly profit", output.Weekly.WeeklyProfit.StringFixed(2)},
			[]interface{}{"Daily average sales", output.Weekly.DailyAverageSales.StringFixed(2)},
			[]interface{}{"Daily average profit", output.Weekly.DailyAverageProfit.StringFixed(2)},
		)
	case output.Monthly != nil:
		rows = append(rows,
			[]interface{}{"Month", output.Monthly.Month},
			[]interface{}{"Total sales", output.Monthly.TotalSales.StringFixed(2)},
			[]interface{}{"Total expenses", output.Monthly.TotalExpenses.StringFixed(2)},
			[]interface{}{"Monthly profit", output.Monthly.MonthlyProfit.StringFixed(2)},
			[]interface{}{"Daily average", output.Monthly.DailyAverage.StringFixed(2)},
		)
	case output.MostProfitable != nil:
		if output.MostProfitable.Product != nil {
			p := output.MostProfitable.Product
			rows = append(rows,
				[]interface{}{"Most profitable product", p.Name},
				[]interface{}{"Quantity sold", p.QuantitySold},
				[]interface{}{"Total sales", p.TotalSales.StringFixed(2)},
				[]interface{}{"Production cost", p.ProductionCost.StringFixed(2)},
				[]interface{}{"Profit", p.Profit.StringFixed(2)},
			)
		} else {
			rows = append(rows, []interface{}{"Result", output.MostProfitable.Message})
		}
	}

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to compute cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set summary cell: %w", err)
			}
		}
	}

	switch {
	case output.Profitability != nil:
		return e.writeProfitabilityTable(f, sheet, len(rows)+2, output.Profitability.Products)
	case output.Trend != nil:
		return e.writeTrendTable(f, sheet, len(rows)+2, output.Trend.DailyData)
	}
	return nil
}

func (e *ExcelExporter) writeProfitabilityTable(f *excelize.File, sheet string, startRow int, products []report.ProfitabilityRow) error {
	headers := []interface{}{"Product", "Quantity sold", "Total sales", "Production cost", "Profit"}
	if err := e.writeRow(f, sheet, startRow, headers); err != nil {
		return err
	}
	for i, p := range products {
		row := []interface{}{
			p.Name,
			p.QuantitySold,
			p.TotalSales.StringFixed(2),
			p.ProductionCost.StringFixed(2),
			p.Profit.StringFixed(2),
		}
		if err := e.writeRow(f, sheet, startRow+i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeTrendTable(f *excelize.File, sheet string, startRow int, points []report.TrendPoint) error {
	headers := []interface{}{"Date", "Sales", "Expenses", "Profit"}
	if err := e.writeRow(f, sheet, startRow, headers); err != nil {
		return err
	}
	for i, p := range points {
		row := []interface{}{
			p.Date.Format(dateLayout),
			p.Sales.StringFixed(2),
			p.Expenses.StringFixed(2),
			p.Profit.StringFixed(2),
		}
		if err := e.writeRow(f, sheet, startRow+i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeSales(f *excelize.File, lines []report.SaleLine) error {
	const sheet = "Sales"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sales sheet: %w", err)
	}
	if err := e.writeRow(f, sheet, 1, []interface{}{"Date", "Product", "Quantity", "Unit price", "Total"}); err != nil {
		return err
	}
	for i, line := range lines {
		row := []interface{}{
			line.Date.Format(dateLayout),
			line.ProductName,
			line.Quantity,
			line.UnitPrice.StringFixed(2),
			line.Total.StringFixed(2),
		}
		if err := e.writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeExpenses(f *excelize.File, lines []report.ExpenseLine) error {
	const sheet = "Expenses"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create expenses sheet: %w", err)
	}
	if err := e.writeRow(f, sheet, 1, []interface{}{"Date", "Description", "Amount"}); err != nil {
		return err
	}
	for i, line := range lines {
		row := []interface{}{
			line.Date.Format(dateLayout),
			line.Description,
			line.Amount.StringFixed(2),
		}
		if err := e.writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeProduction(f *excelize.File, lines []report.ProductionLine) error {
	const sheet = "Production"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create production sheet: %w", err)
	}
	if err := e.writeRow(f, sheet, 1, []interface{}{"Date", "Product", "Quantity", "Unit cost", "Total cost"}); err != nil {
		return err
	}
	for i, line := range lines {
		row := []interface{}{
			line.Date.Format(dateLayout),
			line.ProductName,
			line.Quantity,
			line.UnitCost.StringFixed(2),
			line.TotalCost.StringFixed(2),
		}
		if err := e.writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeDailySummary(f *excelize.File, points []report.TrendPoint) error {
	const sheet = "Daily Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create daily summary sheet: %w", err)
	}
	return e.writeTrendTable(f, sheet, 1, points)
}

func (e *ExcelExporter) writeTopProducts(f *excelize.File, stats []report.ProductSalesStat) error {
	const sheet = "Top Products"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create top products sheet: %w", err)
	}
	if err := e.writeRow(f, sheet, 1, []interface{}{"Product", "Quantity sold", "Revenue"}); err != nil {
		return err
	}
	for i, stat := range stats {
		row := []interface{}{
			stat.Name,
			stat.TotalQuantity,
			stat.TotalRevenue.StringFixed(2),
		}
		if err := e.writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, rowNo int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNo)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell: %w", err)
		}
	}
	return nil
}
