package service

import (
	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/insights"
)

// ReportService produces spending reports from transaction history
type ReportService struct {
	transactionRepo domain.TransactionRepository
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo domain.TransactionRepository) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
	}
}

// GetCategoryBreakdown returns per-category expense totals, largest
// first, with ties kept in insertion order
func (s *ReportService) GetCategoryBreakdown(userID string, filters *domain.TransactionFilters) ([]insights.CategorySpend, error) {
	transactions, err := s.transactionRepo.GetByUser(userID, filters)
	if err != nil {
		return nil, err
	}
	return insights.SpendingByCategory(transactions), nil
}

// GetMonthlyOverview returns income and expense totals for the
// trailing months with activity
func (s *ReportService) GetMonthlyOverview(userID string) ([]insights.MonthBucket, error) {
	transactions, err := s.transactionRepo.GetByUser(userID, nil)
	if err != nil {
		return nil, err
	}
	series := insights.MonthlySeries(transactions)
	return insights.LastN(series, insights.TrailingMonths), nil
}
