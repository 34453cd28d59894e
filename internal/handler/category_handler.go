package handler

import (
	"net/http"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the fixed category registry
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// GetCategories godoc
// @Summary List categories
// @Description Get the fixed set of transaction categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories := domain.Categories()

	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = CategoryResponse{
			ID:    category.ID,
			Name:  category.Name,
			Icon:  category.Icon,
			Color: category.Color,
		}
	}

	return c.JSON(http.StatusOK, responses)
}

// CurrencyResponse represents a supported currency in API responses
type CurrencyResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// GetCurrencies godoc
// @Summary List currencies
// @Description Get the supported currency codes
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CurrencyResponse
// @Router /currencies [get]
func (h *CategoryHandler) GetCurrencies(c echo.Context) error {
	currencies := domain.Currencies()

	responses := make([]CurrencyResponse, len(currencies))
	for i, currency := range currencies {
		responses[i] = CurrencyResponse{
			Code:   currency.Code,
			Name:   currency.Name,
			Symbol: currency.Symbol,
		}
	}

	return c.JSON(http.StatusOK, responses)
}
