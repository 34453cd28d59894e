package handler

import (
	"net/http"

	"github.com/Minjxnx/budget-wise/internal/insights"
	"github.com/Minjxnx/budget-wise/internal/middleware"
	"github.com/Minjxnx/budget-wise/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// CategorySpendResponse represents per-category spending in API responses
type CategorySpendResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Amount       string `json:"amount"`
	Color        string `json:"color"`
}

// DashboardSummaryResponse represents the dashboard summary in API responses
type DashboardSummaryResponse struct {
	TotalIncome    string                   `json:"totalIncome"`
	TotalExpense   string                   `json:"totalExpense"`
	NetBalance     string                   `json:"netBalance"`
	CurrencySymbol string                   `json:"currencySymbol"`
	TopCategories  []CategorySpendResponse  `json:"topCategories"`
	BudgetProgress []BudgetProgressResponse `json:"budgetProgress"`
}

func toCategorySpendResponse(s insights.CategorySpend) CategorySpendResponse {
	return CategorySpendResponse{
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		Amount:       s.Amount.StringFixed(2),
		Color:        s.Color,
	}
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Get income, expense, net balance, top categories, and budget progress
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardSummaryResponse
// @Failure 401 {object} ProblemDetails
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	summary, err := h.dashboardService.GetSummary(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get dashboard summary")
		return NewInternalError(c, "Failed to get dashboard summary")
	}

	topCategories := make([]CategorySpendResponse, len(summary.TopCategories))
	for i, spend := range summary.TopCategories {
		topCategories[i] = toCategorySpendResponse(spend)
	}

	budgetProgress := make([]BudgetProgressResponse, len(summary.BudgetProgress))
	for i, p := range summary.BudgetProgress {
		budgetProgress[i] = toBudgetProgressResponse(p)
	}

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		TotalIncome:    summary.TotalIncome.StringFixed(2),
		TotalExpense:   summary.TotalExpense.StringFixed(2),
		NetBalance:     summary.NetBalance.StringFixed(2),
		CurrencySymbol: summary.CurrencySymbol,
		TopCategories:  topCategories,
		BudgetProgress: budgetProgress,
	})
}
