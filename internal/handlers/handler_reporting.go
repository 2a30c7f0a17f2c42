package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"github.com/granaflow/granaflow/internal/dto"
	"github.com/granaflow/granaflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the dashboard reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/expenses-by-category", h.getExpensesByCategory)
		reports.GET("/monthly-series", h.getMonthlySeries)
		reports.GET("/investments-by-type", h.getInvestmentsByType)
	}
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Returns the headline figures for the current calendar month
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportingService.Summary(c.Request.Context(), userID, time.Now())
	if err != nil {
		logger.Error("Failed to build summary report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(report))
}

// getExpensesByCategory godoc
// @Summary Monthly expenses by category
// @Description Breaks the current month's expenses down by category. Categories
// @Description without spending are omitted.
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ExpensesByCategoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/expenses-by-category [get]
func (h *reportingHandler) getExpensesByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.reportingService.ExpensesByCategory(c.Request.Context(), userID, time.Now())
	if err != nil {
		logger.Error("Failed to build expenses-by-category report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpensesByCategoryResponse(rows))
}

// getMonthlySeries godoc
// @Summary Monthly income and expense series
// @Description Returns income and expense totals for the trailing calendar months, oldest first
// @Tags reports
// @Produce  json
// @Param   months query int false "Number of trailing months" default(6) minimum(1) maximum(36)
// @Success 200 {object} dto.MonthlySeriesResponse
// @Failure 400 {object} map[string]string "Invalid months parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/monthly-series [get]
func (h *reportingHandler) getMonthlySeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMonthlySeriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	points, err := h.reportingService.MonthlySeries(c.Request.Context(), userID, time.Now(), params.Months)
	if err != nil {
		logger.Error("Failed to build monthly series report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(points))
}

// getInvestmentsByType godoc
// @Summary Investments grouped by type
// @Description Groups the user's holdings by investment type. Types with no holdings are omitted.
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.InvestmentsByTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/investments-by-type [get]
func (h *reportingHandler) getInvestmentsByType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.reportingService.InvestmentsByType(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build investments-by-type report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentsByTypeResponse(rows))
}
