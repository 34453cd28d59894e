package handler

import (
	"errors"
	"net/http"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/middleware"
	"github.com/Minjxnx/budget-wise/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SuggestHandler handles AI category suggestion HTTP requests
type SuggestHandler struct {
	suggestionService *service.SuggestionService
}

// NewSuggestHandler creates a new SuggestHandler
func NewSuggestHandler(suggestionService *service.SuggestionService) *SuggestHandler {
	return &SuggestHandler{
		suggestionService: suggestionService,
	}
}

// SuggestCategoryRequest represents the suggestion request body
type SuggestCategoryRequest struct {
	Description string `json:"description"`
}

// SuggestCategoryResponse represents a suggestion in API responses
type SuggestCategoryResponse struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning,omitempty"`
}

// SuggestCategory godoc
// @Summary Suggest a category
// @Description Suggest a transaction category for a description using AI
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SuggestCategoryRequest true "Suggestion request"
// @Success 200 {object} SuggestCategoryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /transactions/suggest-category [post]
func (h *SuggestHandler) SuggestCategory(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req SuggestCategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	suggestion, err := h.suggestionService.SuggestCategory(c.Request().Context(), req.Description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDescriptionRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "description", Message: "Description is required"},
			})
		case errors.Is(err, domain.ErrDescriptionTooLong):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "description", Message: "Description must be 255 characters or less"},
			})
		case errors.Is(err, domain.ErrSuggesterUnavailable):
			return NewUnavailableError(c, "Category suggestions are not available")
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to suggest category")
		return NewInternalError(c, "Failed to suggest category")
	}

	return c.JSON(http.StatusOK, SuggestCategoryResponse{
		CategoryID:   suggestion.CategoryID,
		CategoryName: domain.CategoryName(suggestion.CategoryID),
		Confidence:   suggestion.Confidence,
		Reasoning:    suggestion.Reasoning,
	})
}
