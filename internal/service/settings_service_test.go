package service

import (
	"testing"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/testutil"
	"github.com/Minjxnx/budget-wise/internal/websocket"
)

func TestGetSettingsReturnsDefaults(t *testing.T) {
	repo := testutil.NewMockSettingsRepository()
	svc := NewSettingsService(repo)

	settings, err := svc.GetSettings("auth0|alice")
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if settings.Theme != domain.ThemeLight {
		t.Errorf("expected default theme light, got %s", settings.Theme)
	}
	if settings.Currency != domain.DefaultCurrency {
		t.Errorf("expected default currency %s, got %s", domain.DefaultCurrency, settings.Currency)
	}
	if settings.UserID != "auth0|alice" {
		t.Errorf("expected user ID auth0|alice, got %s", settings.UserID)
	}

	// Defaults are a projection, nothing should be persisted
	if len(repo.Settings) != 0 {
		t.Errorf("expected no persisted settings, got %d", len(repo.Settings))
	}
}

func TestGetSettingsReturnsStored(t *testing.T) {
	repo := testutil.NewMockSettingsRepository()
	repo.AddSettings(&domain.UserSettings{
		UserID:   "auth0|alice",
		Theme:    domain.ThemeDark,
		Currency: "EUR",
	})
	svc := NewSettingsService(repo)

	settings, err := svc.GetSettings("auth0|alice")
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if settings.Theme != domain.ThemeDark {
		t.Errorf("expected dark theme, got %s", settings.Theme)
	}
	if settings.Currency != "EUR" {
		t.Errorf("expected EUR, got %s", settings.Currency)
	}
}

func TestUpdateSettingsPartial(t *testing.T) {
	repo := testutil.NewMockSettingsRepository()
	svc := NewSettingsService(repo)
	publisher := &capturingPublisher{}
	svc.SetEventPublisher(publisher)

	dark := domain.ThemeDark
	updated, err := svc.UpdateSettings("auth0|alice", UpdateSettingsInput{Theme: &dark})
	if err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}
	if updated.Theme != domain.ThemeDark {
		t.Errorf("expected dark theme, got %s", updated.Theme)
	}
	if updated.Currency != domain.DefaultCurrency {
		t.Errorf("expected currency untouched at %s, got %s", domain.DefaultCurrency, updated.Currency)
	}

	currency := "GBP"
	updated, err = svc.UpdateSettings("auth0|alice", UpdateSettingsInput{Currency: &currency})
	if err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}
	if updated.Theme != domain.ThemeDark {
		t.Errorf("expected theme to survive currency update, got %s", updated.Theme)
	}
	if updated.Currency != "GBP" {
		t.Errorf("expected GBP, got %s", updated.Currency)
	}

	if len(publisher.events) != 2 {
		t.Fatalf("expected 2 published events, got %d", len(publisher.events))
	}
	if publisher.events[0].Entity != websocket.EntityTypeSettings {
		t.Errorf("expected settings entity, got %s", publisher.events[0].Entity)
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	repo := testutil.NewMockSettingsRepository()
	svc := NewSettingsService(repo)

	theme := domain.Theme("sepia")
	if _, err := svc.UpdateSettings("auth0|alice", UpdateSettingsInput{Theme: &theme}); err != domain.ErrInvalidTheme {
		t.Errorf("expected ErrInvalidTheme, got %v", err)
	}

	currency := "DOGE"
	if _, err := svc.UpdateSettings("auth0|alice", UpdateSettingsInput{Currency: &currency}); err != domain.ErrInvalidCurrency {
		t.Errorf("expected ErrInvalidCurrency, got %v", err)
	}

	if len(repo.Settings) != 0 {
		t.Errorf("expected nothing persisted on validation failure, got %d entries", len(repo.Settings))
	}
}

func TestCurrencySymbol(t *testing.T) {
	repo := testutil.NewMockSettingsRepository()
	svc := NewSettingsService(repo)

	// Defaults resolve to the dollar sign
	symbol, err := svc.CurrencySymbol("auth0|alice")
	if err != nil {
		t.Fatalf("CurrencySymbol returned error: %v", err)
	}
	if symbol != "$" {
		t.Errorf("expected $, got %s", symbol)
	}

	repo.AddSettings(&domain.UserSettings{
		UserID:   "auth0|bob",
		Theme:    domain.ThemeLight,
		Currency: "EUR",
	})
	symbol, err = svc.CurrencySymbol("auth0|bob")
	if err != nil {
		t.Fatalf("CurrencySymbol returned error: %v", err)
	}
	if symbol != "€" {
		t.Errorf("expected €, got %s", symbol)
	}
}
