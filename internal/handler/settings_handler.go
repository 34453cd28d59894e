package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/middleware"
	"github.com/Minjxnx/budget-wise/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SettingsHandler handles user settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// UpdateSettingsRequest represents a partial settings update
type UpdateSettingsRequest struct {
	Theme    *string `json:"theme,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

// SettingsResponse represents user settings in API responses
type SettingsResponse struct {
	Theme          string `json:"theme"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

func toSettingsResponse(s *domain.UserSettings) SettingsResponse {
	resp := SettingsResponse{
		Theme:          string(s.Theme),
		Currency:       s.Currency,
		CurrencySymbol: domain.CurrencySymbol(s.Currency),
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

// GetSettings godoc
// @Summary Get settings
// @Description Get the authenticated user's settings, with defaults when unset
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SettingsResponse
// @Failure 401 {object} ProblemDetails
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get settings")
		return NewInternalError(c, "Failed to get settings")
	}

	return c.JSON(http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettings godoc
// @Summary Update settings
// @Description Partially update the user's theme or currency
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "Settings update request"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /settings [patch]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.UpdateSettingsInput{
		Currency: req.Currency,
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		input.Theme = &theme
	}

	settings, err := h.settingsService.UpdateSettings(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTheme):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "theme", Message: "Theme must be one of: light, dark"},
			})
		case errors.Is(err, domain.ErrInvalidCurrency):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "currency", Message: "Unknown currency code"},
			})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to update settings")
		return NewInternalError(c, "Failed to update settings")
	}

	log.Info().Str("user_id", userID).Str("theme", string(settings.Theme)).Str("currency", settings.Currency).Msg("Settings updated")

	return c.JSON(http.StatusOK, toSettingsResponse(settings))
}
