// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ops-tracker/backend/internal/application/usecase/report"
)

// PeriodResponse represents an inclusive date range in API responses.
type PeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ToPeriodResponse converts a report Period to a PeriodResponse DTO.
func ToPeriodResponse(period report.Period) PeriodResponse {
	return PeriodResponse{
		StartDate: period.Start.Format(dateLayout),
		EndDate:   period.End.Format(dateLayout),
	}
}

// WeeklyReportResponse represents the weekly report.
type WeeklyReportResponse struct {
	Period             PeriodResponse `json:"period"`
	TotalSales         string         `json:"total_sales"`
	TotalExpenses      string         `json:"total_expenses"`
	WeeklyProfit       string         `json:"weekly_profit"`
	DailyAverageSales  string         `json:"daily_average_sales"`
	DailyAverageProfit string         `json:"daily_average_profit"`
}

// ToWeeklyReportResponse converts weekly report output to its DTO.
func ToWeeklyReportResponse(output *report.GetWeeklyReportOutput) WeeklyReportResponse {
	return WeeklyReportResponse{
		Period:             ToPeriodResponse(output.Period),
		TotalSales:         output.TotalSales.StringFixed(2),
		TotalExpenses:      output.TotalExpenses.StringFixed(2),
		WeeklyProfit:       output.WeeklyProfit.StringFixed(2),
		DailyAverageSales:  output.DailyAverageSales.StringFixed(2),
		DailyAverageProfit: output.DailyAverageProfit.StringFixed(2),
	}
}

// MonthlyReportResponse represents the monthly report.
type MonthlyReportResponse struct {
	Month         string         `json:"month"`
	Period        PeriodResponse `json:"period"`
	TotalSales    string         `json:"total_sales"`
	TotalExpenses string         `json:"total_expenses"`
	MonthlyProfit string         `json:"monthly_profit"`
	DailyAverage  string         `json:"daily_average"`
	DaysInMonth   int            `json:"days_in_month"`
}

// ToMonthlyReportResponse converts monthly report output to its DTO.
func ToMonthlyReportResponse(output *report.GetMonthlyReportOutput) MonthlyReportResponse {
	return MonthlyReportResponse{
		Month:         output.Month,
		Period:        ToPeriodResponse(output.Period),
		TotalSales:    output.TotalSales.StringFixed(2),
		TotalExpenses: output.TotalExpenses.StringFixed(2),
		MonthlyProfit: output.MonthlyProfit.StringFixed(2),
		DailyAverage:  output.DailyAverage.StringFixed(2),
		DaysInMonth:   output.DaysInMonth,
	}
}

// DailyReportResponse represents the daily report.
type DailyReportResponse struct {
	Period        PeriodResponse         `json:"period"`
	Date          string                 `json:"date,omitempty"`
	TotalSales    string                 `json:"total_sales"`
	TotalExpenses string                 `json:"total_expenses"`
	DailyProfit   string                 `json:"daily_profit"`
	TopProducts   []ProductStatsResponse `json:"top_products"`
}

// ProductStatsResponse represents a per-product sales ranking entry.
type ProductStatsResponse struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	TotalQuantity int    `json:"total_quantity"`
	TotalRevenue  string `json:"total_revenue"`
}

// ToDailyReportResponse converts daily report output to its DTO.
func ToDailyReportResponse(output *report.GetDailyReportOutput) DailyReportResponse {
	resp := DailyReportResponse{
		Period:        ToPeriodResponse(output.Period),
		TotalSales:    output.TotalSales.StringFixed(2),
		TotalExpenses: output.TotalExpenses.StringFixed(2),
		DailyProfit:   output.DailyProfit.StringFixed(2),
		TopProducts:   make([]ProductStatsResponse, len(output.TopProducts)),
	}
	if output.SingleDay {
		resp.Date = output.Period.Start.Format(dateLayout)
	}
	for i, stat := range output.TopProducts {
		resp.TopProducts[i] = ProductStatsResponse{
			ProductID:     stat.ProductID.String(),
			Name:          stat.Name,
			TotalQuantity: stat.TotalQuantity,
			TotalRevenue:  stat.TotalRevenue.StringFixed(2),
		}
	}
	return resp
}

// ProfitabilityRowResponse represents a per-product profitability entry.
type ProfitabilityRowResponse struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	QuantitySold   int    `json:"quantity_sold"`
	TotalSales     string `json:"total_sales"`
	ProductionCost string `json:"production_cost"`
	Profit         string `json:"profit"`
}

// ProfitabilityResponse represents the product profitability table.
type ProfitabilityResponse struct {
	Period   PeriodResponse             `json:"period"`
	Products []ProfitabilityRowResponse `json:"products"`
}

// ToProfitabilityResponse converts profitability output to its DTO.
func ToProfitabilityResponse(output *report.GetProductProfitabilityOutput) ProfitabilityResponse {
	resp := ProfitabilityResponse{
		Period:   ToPeriodResponse(output.Period),
		Products: make([]ProfitabilityRowResponse, len(output.Products)),
	}
	for i, row := range output.Products {
		resp.Products[i] = toProfitabilityRowResponse(row)
	}
	return resp
}

func toProfitabilityRowResponse(row report.ProfitabilityRow) ProfitabilityRowResponse {
	return ProfitabilityRowResponse{
		ProductID:      row.ProductID.String(),
		Name:           row.Name,
		QuantitySold:   row.QuantitySold,
		TotalSales:     row.TotalSales.StringFixed(2),
		ProductionCost: row.ProductionCost.StringFixed(2),
		Profit:         row.Profit.StringFixed(2),
	}
}

// MostProfitableResponse represents the most-profitable product result.
type MostProfitableResponse struct {
	Period  PeriodResponse            `json:"period"`
	Product *ProfitabilityRowResponse `json:"product"`
	Message string                    `json:"message,omitempty"`
}

// ToMostProfitableResponse converts most-profitable output to its DTO.
func ToMostProfitableResponse(output *report.GetMostProfitableOutput) MostProfitableResponse {
	resp := MostProfitableResponse{
		Period:  ToPeriodResponse(output.Period),
		Message: output.Message,
	}
	if output.Product != nil {
		row := toProfitabilityRowResponse(*output.Product)
		resp.Product = &row
	}
	return resp
}

// TrendPointResponse represents one day of the daily trend.
type TrendPointResponse struct {
	Date     string `json:"date"`
	Sales    string `json:"sales"`
	Expenses string `json:"expenses"`
	Profit   string `json:"profit"`
}

// TrendResponse represents the daily trend series.
type TrendResponse struct {
	Period    PeriodResponse       `json:"period"`
	DailyData []TrendPointResponse `json:"daily_data"`
}

// ToTrendResponse converts trend output to its DTO.
func ToTrendResponse(output *report.GetDailyTrendOutput) TrendResponse {
	resp := TrendResponse{
		Period:    ToPeriodResponse(output.Period),
		DailyData: make([]TrendPointResponse, len(output.DailyData)),
	}
	for i, point := range output.DailyData {
		resp.DailyData[i] = TrendPointResponse{
			Date:     point.Date.Format(dateLayout),
			Sales:    point.Sales.StringFixed(2),
			Expenses: point.Expenses.StringFixed(2),
			Profit:   point.Profit.StringFixed(2),
		}
	}
	return resp
}

// SaleLineResponse represents a sale line item in a detailed report.
type SaleLineResponse struct {
	Date        string `json:"date"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

// ExpenseLineResponse represents an expense line item in a detailed report.
type ExpenseLineResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// ProductionLineResponse represents a production line item in a detailed report.
type ProductionLineResponse struct {
	Date        string `json:"date"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitCost    string `json:"unit_cost"`
	TotalCost   string `json:"total_cost"`
}

// ReportDetailsResponse carries the line items, per-day summary and
// top-products ranking of a detailed report.
type ReportDetailsResponse struct {
	Sales        []SaleLineResponse       `json:"sales"`
	Expenses     []ExpenseLineResponse    `json:"expenses"`
	Production   []ProductionLineResponse `json:"production"`
	DailySummary []TrendPointResponse     `json:"daily_summary"`
	TopProducts  []ProductStatsResponse   `json:"top_products,omitempty"`
}

// DetailedReportResponse pairs a report summary with its line items.
// Exactly one summary field is set, matching Kind.
type DetailedReportResponse struct {
	Kind           string                  `json:"kind"`
	Period         PeriodResponse          `json:"period"`
	Weekly         *WeeklyReportResponse   `json:"weekly,omitempty"`
	Monthly        *MonthlyReportResponse  `json:"monthly,omitempty"`
	Profitability  *ProfitabilityResponse  `json:"profitability,omitempty"`
	Trend          *TrendResponse          `json:"trend,omitempty"`
	MostProfitable *MostProfitableResponse `json:"most_profitable,omitempty"`
	Details        ReportDetailsResponse   `json:"details"`
}

// ToDetailedReportResponse converts detailed report output to its DTO.
func ToDetailedReportResponse(output *report.GetDetailedReportOutput) DetailedReportResponse {
	resp := DetailedReportResponse{
		Kind:    string(output.Kind),
		Period:  ToPeriodResponse(output.Period),
		Details: toReportDetailsResponse(output.Details),
	}

	if output.Weekly != nil {
		weekly := ToWeeklyReportResponse(output.Weekly)
		resp.Weekly = &weekly
	}
	if output.Monthly != nil {
		monthly := ToMonthlyReportResponse(output.Monthly)
		resp.Monthly = &monthly
	}
	if output.Profitability != nil {
		profitability := ToProfitabilityResponse(output.Profitability)
		resp.Profitability = &profitability
	}
	if output.Trend != nil {
		trend := ToTrendResponse(output.Trend)
		resp.Trend = &trend
	}
	if output.MostProfitable != nil {
		mostProfitable := ToMostProfitableResponse(output.MostProfitable)
		resp.MostProfitable = &mostProfitable
	}

	return resp
}

func toReportDetailsResponse(details report.ReportDetails) ReportDetailsResponse {
	resp := ReportDetailsResponse{
		Sales:        make([]SaleLineResponse, len(details.Sales)),
		Expenses:     make([]ExpenseLineResponse, len(details.Expenses)),
		Production:   make([]ProductionLineResponse, len(details.Production)),
		DailySummary: make([]TrendPointResponse, len(details.DailySummary)),
	}
	for i, line := range details.Sales {
		resp.Sales[i] = SaleLineResponse{
			Date:        line.Date.Format(dateLayout),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.StringFixed(2),
			Total:       line.Total.StringFixed(2),
		}
	}
	for i, line := range details.Expenses {
		resp.Expenses[i] = ExpenseLineResponse{
			Date:        line.Date.Format(dateLayout),
			Description: line.Description,
			Amount:      line.Amount.StringFixed(2),
		}
	}
	for i, line := range details.Production {
		resp.Production[i] = ProductionLineResponse{
			Date:        line.Date.Format(dateLayout),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitCost:    line.UnitCost.StringFixed(2),
			TotalCost:   line.TotalCost.StringFixed(2),
		}
	}
	for i, point := range details.DailySummary {
		resp.DailySummary[i] = TrendPointResponse{
			Date:     point.Date.Format(dateLayout),
			Sales:    point.Sales.StringFixed(2),
			Expenses: point.Expenses.StringFixed(2),
			Profit:   point.Profit.StringFixed(2),
		}
	}
	if len(details.TopProducts) > 0 {
		resp.TopProducts = make([]ProductStatsResponse, len(details.TopProducts))
		for i, stat := range details.TopProducts {
			resp.TopProducts[i] = ProductStatsResponse{
				ProductID:     stat.ProductID.String(),
				Name:          stat.Name,
				TotalQuantity: stat.TotalQuantity,
				TotalRevenue:  stat.TotalRevenue.StringFixed(2),
			}
		}
	}
	return resp
}
