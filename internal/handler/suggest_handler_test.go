package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/service"
	"github.com/Minjxnx/budget-wise/internal/testutil"
	"github.com/labstack/echo/v4"
)

func TestSuggestCategory_Success(t *testing.T) {
	e := echo.New()
	suggester := testutil.NewMockSuggester(&domain.CategorySuggestion{
		CategoryID: "dining",
		Confidence: 0.85,
		Reasoning:  "Restaurant name",
	})
	handler := NewSuggestHandler(service.NewSuggestionService(suggester))

	body := `{"description":"Luigi's Pizzeria"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/suggest-category", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|test")

	if err := handler.SuggestCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response SuggestCategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.CategoryID != "dining" {
		t.Errorf("Expected dining, got %s", response.CategoryID)
	}
	if response.CategoryName != "Dining Out" {
		t.Errorf("Expected Dining Out, got %s", response.CategoryName)
	}
	if response.Confidence != 0.85 {
		t.Errorf("Expected confidence 0.85, got %f", response.Confidence)
	}
}

func TestSuggestCategory_EmptyDescription(t *testing.T) {
	e := echo.New()
	suggester := testutil.NewMockSuggester(&domain.CategorySuggestion{CategoryID: "other"})
	handler := NewSuggestHandler(service.NewSuggestionService(suggester))

	body := `{"description":"   "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/suggest-category", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|test")

	if err := handler.SuggestCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestSuggestCategory_Unavailable(t *testing.T) {
	e := echo.New()
	suggester := testutil.NewMockSuggester(&domain.CategorySuggestion{CategoryID: "other"})
	suggester.Available = false
	handler := NewSuggestHandler(service.NewSuggestionService(suggester))

	body := `{"description":"Coffee"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/suggest-category", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|test")

	if err := handler.SuggestCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rec.Code)
	}
}

func TestSuggestCategory_Unauthenticated(t *testing.T) {
	e := echo.New()
	suggester := testutil.NewMockSuggester(&domain.CategorySuggestion{CategoryID: "other"})
	handler := NewSuggestHandler(service.NewSuggestionService(suggester))

	body := `{"description":"Coffee"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/suggest-category", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SuggestCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}
