package handler

import (
	"net/http"
	"time"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/middleware"
	"github.com/Minjxnx/budget-wise/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// MonthBucketResponse represents one month of totals in API responses
type MonthBucketResponse struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// GetCategoryBreakdown godoc
// @Summary Spending by category
// @Description Get per-category expense totals, largest first
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} CategorySpendResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /reports/categories [get]
func (h *ReportHandler) GetCategoryBreakdown(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filters := &domain.TransactionFilters{}

	if startDateStr := c.QueryParam("startDate"); startDateStr != "" {
		parsed, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return NewValidationError(c, "Invalid startDate format (use YYYY-MM-DD)", nil)
		}
		filters.StartDate = &parsed
	}

	if endDateStr := c.QueryParam("endDate"); endDateStr != "" {
		parsed, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return NewValidationError(c, "Invalid endDate format (use YYYY-MM-DD)", nil)
		}
		filters.EndDate = &parsed
	}

	breakdown, err := h.reportService.GetCategoryBreakdown(userID, filters)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get category breakdown")
		return NewInternalError(c, "Failed to get category breakdown")
	}

	responses := make([]CategorySpendResponse, len(breakdown))
	for i, spend := range breakdown {
		responses[i] = toCategorySpendResponse(spend)
	}

	return c.JSON(http.StatusOK, responses)
}

// GetMonthlyOverview godoc
// @Summary Monthly overview
// @Description Get income and expense totals for the trailing six months with activity
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} MonthBucketResponse
// @Failure 401 {object} ProblemDetails
// @Router /reports/monthly [get]
func (h *ReportHandler) GetMonthlyOverview(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	overview, err := h.reportService.GetMonthlyOverview(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get monthly overview")
		return NewInternalError(c, "Failed to get monthly overview")
	}

	responses := make([]MonthBucketResponse, len(overview))
	for i, bucket := range overview {
		responses[i] = MonthBucketResponse{
			Key:     bucket.Key,
			Label:   bucket.Label,
			Income:  bucket.Income.StringFixed(2),
			Expense: bucket.Expense.StringFixed(2),
		}
	}

	return c.JSON(http.StatusOK, responses)
}
