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

func newSettingsHandler() (*SettingsHandler, *testutil.MockSettingsRepository) {
	repo := testutil.NewMockSettingsRepository()
	svc := service.NewSettingsService(repo)
	return NewSettingsHandler(svc), repo
}

func TestGetSettings_Defaults(t *testing.T) {
	e := echo.New()
	handler, _ := newSettingsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|test")

	if err := handler.GetSettings(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response SettingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Theme != "light" {
		t.Errorf("Expected light theme, got %s", response.Theme)
	}
	if response.Currency != "USD" {
		t.Errorf("Expected USD, got %s", response.Currency)
	}
	if response.CurrencySymbol != "$" {
		t.Errorf("Expected $, got %s", response.CurrencySymbol)
	}
}

func TestUpdateSettings_Success(t *testing.T) {
	e := echo.New()
	handler, _ := newSettingsHandler()

	body := `{"theme":"dark","currency":"EUR"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/settings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|test")

	if err := handler.UpdateSettings(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response SettingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Theme != "dark" {
		t.Errorf("Expected dark theme, got %s", response.Theme)
	}
	if response.CurrencySymbol != "€" {
		t.Errorf("Expected euro symbol, got %s", response.CurrencySymbol)
	}
}

func TestUpdateSettings_Validation(t *testing.T) {
	e := echo.New()
	handler, repo := newSettingsHandler()

	repo.AddSettings(&domain.UserSettings{
		UserID:   "auth0|test",
		Theme:    domain.ThemeLight,
		Currency: "USD",
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "bad theme", body: `{"theme":"sepia"}`},
		{name: "bad currency", body: `{"currency":"DOGE"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/settings", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			setupAuthContext(c, "auth0|test")

			if err := handler.UpdateSettings(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}

	// Stored settings untouched
	stored := repo.Settings["auth0|test"]
	if stored.Theme != domain.ThemeLight || stored.Currency != "USD" {
		t.Errorf("Expected stored settings unchanged, got %s/%s", stored.Theme, stored.Currency)
	}
}

func TestGetSettings_Unauthenticated(t *testing.T) {
	e := echo.New()
	handler, _ := newSettingsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetSettings(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}
