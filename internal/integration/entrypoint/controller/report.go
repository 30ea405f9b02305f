// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ops-tracker/backend/internal/application/usecase/report"
	"github.com/ops-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/ops-tracker/backend/internal/integration/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController handles report aggregation endpoints.
type ReportController struct {
	weeklyUseCase         *report.GetWeeklyReportUseCase
	dailyUseCase          *report.GetDailyReportUseCase
	monthlyUseCase        *report.GetMonthlyReportUseCase
	profitabilityUseCase  *report.GetProductProfitabilityUseCase
	mostProfitableUseCase *report.GetMostProfitableUseCase
	trendUseCase          *report.GetDailyTrendUseCase
	detailedUseCase       *report.GetDetailedReportUseCase
	exporter              *export.ExcelExporter
}

// NewReportController creates a new report controller instance.
func NewReportController(
	weeklyUseCase *report.GetWeeklyReportUseCase,
	dailyUseCase *report.GetDailyReportUseCase,
	monthlyUseCase *report.GetMonthlyReportUseCase,
	profitabilityUseCase *report.GetProductProfitabilityUseCase,
	mostProfitableUseCase *report.GetMostProfitableUseCase,
	trendUseCase *report.GetDailyTrendUseCase,
	detailedUseCase *report.GetDetailedReportUseCase,
	exporter *export.ExcelExporter,
) *ReportController {
	return &ReportController{
		weeklyUseCase:         weeklyUseCase,
		dailyUseCase:          dailyUseCase,
		monthlyUseCase:        monthlyUseCase,
		profitabilityUseCase:  profitabilityUseCase,
		mostProfitableUseCase: mostProfitableUseCase,
		trendUseCase:          trendUseCase,
		detailedUseCase:       detailedUseCase,
		exporter:              exporter,
	}
}

// Weekly handles GET /reports/weekly?date=YYYY-MM-DD requests.
func (c *ReportController) Weekly(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.weeklyUseCase.Execute(ctx.Request.Context(), report.GetWeeklyReportInput{
		BusinessID: businessID,
		Date:       ctx.Query("date"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklyReportResponse(output))
}

// Daily handles GET /reports/daily requests. Either date or
// start_date/end_date selects the period.
func (c *ReportController) Daily(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), report.GetDailyReportInput{
		BusinessID: businessID,
		Date:       ctx.Query("date"),
		StartDate:  ctx.Query("start_date"),
		EndDate:    ctx.Query("end_date"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyReportResponse(output))
}

// Monthly handles GET /reports/monthly?month=YYYY-MM requests.
func (c *ReportController) Monthly(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), report.GetMonthlyReportInput{
		BusinessID: businessID,
		Month:      ctx.Query("month"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output))
}

// Profitability handles GET /reports/profitability requests.
func (c *ReportController) Profitability(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.profitabilityUseCase.Execute(ctx.Request.Context(), report.GetProductProfitabilityInput{
		BusinessID: businessID,
		StartDate:  ctx.Query("start_date"),
		EndDate:    ctx.Query("end_date"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitabilityResponse(output))
}

// MostProfitable handles GET /reports/most-profitable requests.
func (c *ReportController) MostProfitable(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.mostProfitableUseCase.Execute(ctx.Request.Context(), report.GetMostProfitableInput{
		BusinessID: businessID,
		StartDate:  ctx.Query("start_date"),
		EndDate:    ctx.Query("end_date"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMostProfitableResponse(output))
}

// Trend handles GET /reports/trend requests.
func (c *ReportController) Trend(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), report.GetDailyTrendInput{
		BusinessID: businessID,
		StartDate:  ctx.Query("start_date"),
		EndDate:    ctx.Query("end_date"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendResponse(output))
}

// Detailed handles GET /reports/:kind/detailed requests.
func (c *ReportController) Detailed(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	kind, err := report.ParseKind(ctx.Param("kind"))
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	output, err := c.detailedUseCase.Execute(ctx.Request.Context(), report.GetDetailedReportInput{
		BusinessID: businessID,
		Kind:       kind,
		Date:       ctx.Query("date"),
		Month:      ctx.Query("month"),
		StartDate:  ctx.Query("start_date"),
		EndDate:    ctx.Query("end_date"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDetailedReportResponse(output))
}

// Download handles GET /reports/:kind/download requests, streaming the
// detailed report as a spreadsheet.
func (c *ReportController) Download(ctx *gin.Context) {
	businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	kind, err := report.ParseKind(ctx.Param("kind"))
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	output, err := c.detailedUseCase.Execute(ctx.Request.Context(), report.GetDetailedReportInput{
		BusinessID: businessID,
		Kind:       kind,
		Date:       ctx.Query("date"),
		Month:      ctx.Query("month"),
		StartDate:  ctx.Query("start_date"),
		EndDate:    ctx.Query("end_date"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	content, err := c.exporter.Export(output)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	filename := fmt.Sprintf("%s-report_%s_%s.xlsx",
		kind,
		output.Period.Start.Format("2006-01-02"),
		output.Period.End.Format("2006-01-02"),
	)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, content)
}
