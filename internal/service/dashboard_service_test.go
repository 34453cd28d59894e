package service

import (
	"testing"
	"time"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/testutil"
	"github.com/shopspring/decimal"
)

func newDashboardFixture() (*DashboardService, *testutil.MockTransactionRepository, *testutil.MockBudgetRepository, *testutil.MockSettingsRepository) {
	transactionRepo := testutil.NewMockTransactionRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	settingsRepo := testutil.NewMockSettingsRepository()
	svc := NewDashboardService(transactionRepo, budgetRepo, settingsRepo)
	return svc, transactionRepo, budgetRepo, settingsRepo
}

func TestGetSummary(t *testing.T) {
	svc, transactionRepo, budgetRepo, _ := newDashboardFixture()

	june := func(day int) time.Time {
		return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
	}

	transactionRepo.AddTransaction(&domain.Transaction{
		UserID:      "auth0|alice",
		Description: "Groceries",
		Amount:      decimal.NewFromInt(50),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  "groceries",
		Date:        june(5),
	})
	transactionRepo.AddTransaction(&domain.Transaction{
		UserID:      "auth0|alice",
		Description: "More groceries",
		Amount:      decimal.NewFromInt(30),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  "groceries",
		Date:        june(12),
	})
	transactionRepo.AddTransaction(&domain.Transaction{
		UserID:      "auth0|alice",
		Description: "Salary",
		Amount:      decimal.NewFromInt(1000),
		Type:        domain.TransactionTypeIncome,
		CategoryID:  "income",
		Date:        june(1),
	})

	budgetRepo.AddBudget(&domain.Budget{
		UserID:     "auth0|alice",
		CategoryID: "groceries",
		Amount:     decimal.NewFromInt(100),
		Period:     domain.BudgetPeriodMonthly,
		StartDate:  june(1),
	})

	summary, err := svc.GetSummary("auth0|alice")
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}

	if !summary.TotalIncome.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected income 1000, got %s", summary.TotalIncome)
	}
	if !summary.TotalExpense.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected expense 80, got %s", summary.TotalExpense)
	}
	if !summary.NetBalance.Equal(decimal.NewFromInt(920)) {
		t.Errorf("expected net balance 920, got %s", summary.NetBalance)
	}
	if summary.CurrencySymbol != "$" {
		t.Errorf("expected default symbol $, got %s", summary.CurrencySymbol)
	}

	if len(summary.TopCategories) != 1 {
		t.Fatalf("expected 1 top category, got %d", len(summary.TopCategories))
	}
	if summary.TopCategories[0].CategoryID != "groceries" {
		t.Errorf("expected groceries on top, got %s", summary.TopCategories[0].CategoryID)
	}
	if !summary.TopCategories[0].Amount.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected groceries total 80, got %s", summary.TopCategories[0].Amount)
	}

	if len(summary.BudgetProgress) != 1 {
		t.Fatalf("expected 1 budget progress entry, got %d", len(summary.BudgetProgress))
	}
	if !summary.BudgetProgress[0].Spent.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected spent 80, got %s", summary.BudgetProgress[0].Spent)
	}
	if !summary.BudgetProgress[0].Remaining.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected remaining 20, got %s", summary.BudgetProgress[0].Remaining)
	}
}

func TestGetSummaryEmpty(t *testing.T) {
	svc, _, _, _ := newDashboardFixture()

	summary, err := svc.GetSummary("auth0|alice")
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}

	if !summary.TotalIncome.IsZero() || !summary.TotalExpense.IsZero() || !summary.NetBalance.IsZero() {
		t.Errorf("expected zero totals, got income=%s expense=%s net=%s",
			summary.TotalIncome, summary.TotalExpense, summary.NetBalance)
	}
	if len(summary.TopCategories) != 0 {
		t.Errorf("expected no categories, got %d", len(summary.TopCategories))
	}
	if len(summary.BudgetProgress) != 0 {
		t.Errorf("expected no budget progress, got %d", len(summary.BudgetProgress))
	}
}

func TestGetSummaryUsesUserCurrency(t *testing.T) {
	svc, _, _, settingsRepo := newDashboardFixture()

	settingsRepo.AddSettings(&domain.UserSettings{
		UserID:   "auth0|alice",
		Theme:    domain.ThemeLight,
		Currency: "JPY",
	})

	summary, err := svc.GetSummary("auth0|alice")
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}
	if summary.CurrencySymbol != "¥" {
		t.Errorf("expected yen symbol, got %s", summary.CurrencySymbol)
	}
}

func TestGetSummaryCapsTopCategories(t *testing.T) {
	svc, transactionRepo, _, _ := newDashboardFixture()

	categories := []string{"groceries", "utilities", "rent", "transport", "health", "dining", "entertain"}
	for i, category := range categories {
		transactionRepo.AddTransaction(&domain.Transaction{
			UserID:      "auth0|alice",
			Description: category,
			Amount:      decimal.NewFromInt(int64(100 - i*10)),
			Type:        domain.TransactionTypeExpense,
			CategoryID:  category,
			Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		})
	}

	summary, err := svc.GetSummary("auth0|alice")
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}
	if len(summary.TopCategories) != 5 {
		t.Fatalf("expected top categories capped at 5, got %d", len(summary.TopCategories))
	}
	if summary.TopCategories[0].CategoryID != "groceries" {
		t.Errorf("expected groceries first, got %s", summary.TopCategories[0].CategoryID)
	}
	if summary.TopCategories[4].CategoryID != "health" {
		t.Errorf("expected health fifth, got %s", summary.TopCategories[4].CategoryID)
	}
}
