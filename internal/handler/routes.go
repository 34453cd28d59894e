package handler

import (
	"github.com/Minjxnx/budget-wise/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, transactionHandler *TransactionHandler, budgetHandler *BudgetHandler, settingsHandler *SettingsHandler, categoryHandler *CategoryHandler, dashboardHandler *DashboardHandler, reportHandler *ReportHandler, suggestHandler *SuggestHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Transaction routes (protected)
	transactions := api.Group("/transactions")
	transactions.Use(authMiddleware.Authenticate())
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	// Suggestions call an external model, so they are rate limited per user
	transactions.POST("/suggest-category", suggestHandler.SuggestCategory, middleware.RateLimitMiddleware(rateLimiter))

	// Budget routes (protected)
	budgets := api.Group("/budgets")
	budgets.Use(authMiddleware.Authenticate())
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/progress", budgetHandler.GetBudgetProgress)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Settings routes (protected)
	settings := api.Group("/settings")
	settings.Use(authMiddleware.Authenticate())
	settings.GET("", settingsHandler.GetSettings)
	settings.PATCH("", settingsHandler.UpdateSettings)

	// Reference data routes (protected)
	categories := api.Group("/categories")
	categories.Use(authMiddleware.Authenticate())
	categories.GET("", categoryHandler.GetCategories)

	currencies := api.Group("/currencies")
	currencies.Use(authMiddleware.Authenticate())
	currencies.GET("", categoryHandler.GetCurrencies)

	// Dashboard routes (protected)
	dashboard := api.Group("/dashboard")
	dashboard.Use(authMiddleware.Authenticate())
	dashboard.GET("/summary", dashboardHandler.GetSummary)

	// Report routes (protected)
	reports := api.Group("/reports")
	reports.Use(authMiddleware.Authenticate())
	reports.GET("/categories", reportHandler.GetCategoryBreakdown)
	reports.GET("/monthly", reportHandler.GetMonthlyOverview)
}
