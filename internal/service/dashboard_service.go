package service

import (
	"errors"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/insights"
	"github.com/shopspring/decimal"
)

// DashboardService aggregates transactions and budgets into the
// dashboard summary
type DashboardService struct {
	transactionRepo domain.TransactionRepository
	budgetRepo      domain.BudgetRepository
	settingsRepo    domain.SettingsRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	transactionRepo domain.TransactionRepository,
	budgetRepo domain.BudgetRepository,
	settingsRepo domain.SettingsRepository,
) *DashboardService {
	return &DashboardService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		settingsRepo:    settingsRepo,
	}
}

// DashboardSummary is the aggregated view backing the dashboard
type DashboardSummary struct {
	TotalIncome    decimal.Decimal           `json:"totalIncome"`
	TotalExpense   decimal.Decimal           `json:"totalExpense"`
	NetBalance     decimal.Decimal           `json:"netBalance"`
	CurrencySymbol string                    `json:"currencySymbol"`
	TopCategories  []insights.CategorySpend  `json:"topCategories"`
	BudgetProgress []insights.BudgetProgress `json:"budgetProgress"`
}

// GetSummary computes the dashboard summary for a user
func (s *DashboardService) GetSummary(userID string) (*DashboardSummary, error) {
	transactions, err := s.transactionRepo.GetByUser(userID, nil)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	symbol := domain.CurrencySymbol(domain.DefaultCurrency)
	settings, err := s.settingsRepo.GetByUser(userID)
	if err == nil {
		symbol = domain.CurrencySymbol(settings.Currency)
	} else if !errors.Is(err, domain.ErrSettingsNotFound) {
		return nil, err
	}

	spending := insights.SpendingByCategory(transactions)
	progress := make([]insights.BudgetProgress, 0, len(budgets))
	for _, budget := range budgets {
		progress = append(progress, insights.Progress(budget, transactions))
	}

	return &DashboardSummary{
		TotalIncome:    insights.TotalByType(transactions, domain.TransactionTypeIncome),
		TotalExpense:   insights.TotalByType(transactions, domain.TransactionTypeExpense),
		NetBalance:     insights.NetBalance(transactions),
		CurrencySymbol: symbol,
		TopCategories:  insights.TopCategories(spending, insights.TopCategoryCount),
		BudgetProgress: progress,
	}, nil
}
