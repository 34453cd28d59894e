package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/service"
	"github.com/Minjxnx/budget-wise/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newReportHandler() (*ReportHandler, *testutil.MockTransactionRepository) {
	repo := testutil.NewMockTransactionRepository()
	svc := service.NewReportService(repo)
	return NewReportHandler(svc), repo
}

func TestGetCategoryBreakdown_Success(t *testing.T) {
	e := echo.New()
	handler, repo := newReportHandler()

	repo.AddTransaction(&domain.Transaction{
		UserID:      "auth0|test",
		Description: "Rent",
		Amount:      decimal.NewFromInt(800),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  "rent",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	repo.AddTransaction(&domain.Transaction{
		UserID:      "auth0|test",
		Description: "Groceries",
		Amount:      decimal.NewFromInt(120),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  "groceries",
		Date:        time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|test")

	if err := handler.GetCategoryBreakdown(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []CategorySpendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(response))
	}
	if response[0].CategoryID != "rent" || response[0].Amount != "800.00" {
		t.Errorf("Expected rent/800.00 first, got %s/%s", response[0].CategoryID, response[0].Amount)
	}
}

func TestGetCategoryBreakdown_InvalidDate(t *testing.T) {
	e := echo.New()
	handler, _ := newReportHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/categories?startDate=June", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|test")

	if err := handler.GetCategoryBreakdown(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetMonthlyOverview_Success(t *testing.T) {
	e := echo.New()
	handler, repo := newReportHandler()

	for month := 3; month <= 8; month++ {
		repo.AddTransaction(&domain.Transaction{
			UserID:      "auth0|test",
			Description: "Salary",
			Amount:      decimal.NewFromInt(1000),
			Type:        domain.TransactionTypeIncome,
			CategoryID:  "income",
			Date:        time.Date(2025, time.Month(month), 15, 0, 0, 0, 0, time.UTC),
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/monthly", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|test")

	if err := handler.GetMonthlyOverview(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []MonthBucketResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 6 {
		t.Fatalf("Expected 6 months, got %d", len(response))
	}
	if response[0].Key != "2025-03" {
		t.Errorf("Expected 2025-03 first, got %s", response[0].Key)
	}
	if response[0].Income != "1000.00" || response[0].Expense != "0.00" {
		t.Errorf("Expected income 1000.00 / expense 0.00, got %s/%s", response[0].Income, response[0].Expense)
	}
}
