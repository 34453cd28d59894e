package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/insights"
	"github.com/Minjxnx/budget-wise/internal/middleware"
	"github.com/Minjxnx/budget-wise/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// CreateBudgetRequest represents the create budget request body
type CreateBudgetRequest struct {
	CategoryID string  `json:"categoryId"`
	Amount     string  `json:"amount"`
	Period     *string `json:"period,omitempty"`
	StartDate  *string `json:"startDate,omitempty"`
}

// UpdateBudgetRequest represents the update budget request body
type UpdateBudgetRequest struct {
	CategoryID string `json:"categoryId"`
	Amount     string `json:"amount"`
	StartDate  string `json:"startDate"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID           string `json:"id"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Amount       string `json:"amount"`
	Period       string `json:"period"`
	StartDate    string `json:"startDate"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// BudgetProgressResponse represents budget consumption in API responses
type BudgetProgressResponse struct {
	Budget        BudgetResponse `json:"budget"`
	Spent         string         `json:"spent"`
	Remaining     string         `json:"remaining"`
	PercentUsed   string         `json:"percentUsed"`
	ActualPercent string         `json:"actualPercent"`
	Overspent     bool           `json:"overspent"`
}

func toBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:           b.ID.String(),
		CategoryID:   b.CategoryID,
		CategoryName: domain.CategoryName(b.CategoryID),
		Amount:       b.Amount.StringFixed(2),
		Period:       string(b.Period),
		StartDate:    b.StartDate.Format("2006-01-02"),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}

func toBudgetProgressResponse(p insights.BudgetProgress) BudgetProgressResponse {
	return BudgetProgressResponse{
		Budget:        toBudgetResponse(p.Budget),
		Spent:         p.Spent.StringFixed(2),
		Remaining:     p.Remaining.StringFixed(2),
		PercentUsed:   p.PercentUsed.StringFixed(2),
		ActualPercent: p.ActualPercent.StringFixed(2),
		Overspent:     p.Overspent,
	}
}

// CreateBudget godoc
// @Summary Create a budget
// @Description Create a monthly budget for a category
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBudgetRequest true "Budget creation request"
// @Success 201 {object} BudgetResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var startDate *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return NewValidationError(c, "Invalid startDate", []ValidationError{
				{Field: "startDate", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		startDate = &parsed
	}

	input := service.CreateBudgetInput{
		CategoryID: req.CategoryID,
		Amount:     amount,
		StartDate:  startDate,
	}
	if req.Period != nil {
		input.Period = domain.BudgetPeriod(*req.Period)
	}

	budget, err := h.budgetService.CreateBudget(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCategory):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "categoryId", Message: "Unknown category"},
			})
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must not be negative"},
			})
		case errors.Is(err, domain.ErrInvalidPeriod):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "period", Message: "Period must be 'monthly'"},
			})
		case errors.Is(err, domain.ErrBudgetExists):
			return NewConflictError(c, "A budget for this category already exists")
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create budget")
		return NewInternalError(c, "Failed to create budget")
	}

	log.Info().Str("user_id", userID).Str("budget_id", budget.ID.String()).Str("category_id", budget.CategoryID).Msg("Budget created")

	return c.JSON(http.StatusCreated, toBudgetResponse(budget))
}

// GetBudgets godoc
// @Summary List budgets
// @Description Get all budgets for the authenticated user
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BudgetResponse
// @Failure 401 {object} ProblemDetails
// @Router /budgets [get]
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	budgets, err := h.budgetService.GetBudgets(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get budgets")
		return NewInternalError(c, "Failed to get budgets")
	}

	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = toBudgetResponse(budget)
	}

	return c.JSON(http.StatusOK, responses)
}

// UpdateBudget godoc
// @Summary Update a budget
// @Description Update a budget's category, amount, or start date
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget ID"
// @Param request body UpdateBudgetRequest true "Budget update request"
// @Success 200 {object} BudgetResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	var req UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return NewValidationError(c, "Invalid startDate", []ValidationError{
			{Field: "startDate", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	budget, err := h.budgetService.UpdateBudget(userID, id, service.UpdateBudgetInput{
		CategoryID: req.CategoryID,
		Amount:     amount,
		StartDate:  startDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCategory):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "categoryId", Message: "Unknown category"},
			})
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must not be negative"},
			})
		case errors.Is(err, domain.ErrBudgetNotFound):
			return NewNotFoundError(c, "Budget not found")
		case errors.Is(err, domain.ErrBudgetExists):
			return NewConflictError(c, "A budget for this category already exists")
		}
		log.Error().Err(err).Str("user_id", userID).Str("budget_id", id.String()).Msg("Failed to update budget")
		return NewInternalError(c, "Failed to update budget")
	}

	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// DeleteBudget godoc
// @Summary Delete a budget
// @Description Delete a budget by ID
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget ID"
// @Success 204
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	if err := h.budgetService.DeleteBudget(userID, id); err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Str("user_id", userID).Str("budget_id", id.String()).Msg("Failed to delete budget")
		return NewInternalError(c, "Failed to delete budget")
	}

	log.Info().Str("user_id", userID).Str("budget_id", id.String()).Msg("Budget deleted")

	return c.NoContent(http.StatusNoContent)
}

// GetBudgetProgress godoc
// @Summary Budget progress
// @Description Get spending progress for every budget
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BudgetProgressResponse
// @Failure 401 {object} ProblemDetails
// @Router /budgets/progress [get]
func (h *BudgetHandler) GetBudgetProgress(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	progress, err := h.budgetService.GetBudgetProgress(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get budget progress")
		return NewInternalError(c, "Failed to get budget progress")
	}

	responses := make([]BudgetProgressResponse, len(progress))
	for i, p := range progress {
		responses[i] = toBudgetProgressResponse(p)
	}

	return c.JSON(http.StatusOK, responses)
}
