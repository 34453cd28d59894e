package service

import (
	"time"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/insights"
	"github.com/Minjxnx/budget-wise/internal/util"
	"github.com/Minjxnx/budget-wise/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget-related business logic
type BudgetService struct {
	budgetRepo      domain.BudgetRepository
	transactionRepo domain.TransactionRepository
	eventPublisher  websocket.EventPublisher
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, transactionRepo domain.TransactionRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *BudgetService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *BudgetService) publishEvent(userID string, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateBudgetInput holds the input for creating a budget
type CreateBudgetInput struct {
	CategoryID string
	Amount     decimal.Decimal
	Period     domain.BudgetPeriod
	StartDate  *time.Time
}

// CreateBudget creates a new budget with validation. Zero amounts are
// allowed; the progress calculation guards against dividing by them.
func (s *BudgetService) CreateBudget(userID string, input CreateBudgetInput) (*domain.Budget, error) {
	if !domain.IsValidCategory(input.CategoryID) {
		return nil, domain.ErrInvalidCategory
	}

	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	period := input.Period
	if period == "" {
		period = domain.BudgetPeriodMonthly
	}
	if period != domain.BudgetPeriodMonthly {
		return nil, domain.ErrInvalidPeriod
	}

	// Only one budget per category per user
	existing, err := s.budgetRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if b.CategoryID == input.CategoryID {
			return nil, domain.ErrBudgetExists
		}
	}

	// Default start date to the first of the current month
	startDate := util.StartOfMonth(time.Now().UTC())
	if input.StartDate != nil {
		startDate = *input.StartDate
	}

	budget := &domain.Budget{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		Period:     period,
		StartDate:  startDate,
	}

	created, err := s.budgetRepo.Create(budget)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.BudgetCreated(created))

	return created, nil
}

// GetBudgets retrieves all budgets for a user
func (s *BudgetService) GetBudgets(userID string) ([]*domain.Budget, error) {
	return s.budgetRepo.GetByUser(userID)
}

// UpdateBudgetInput holds the input for updating a budget
type UpdateBudgetInput struct {
	CategoryID string
	Amount     decimal.Decimal
	StartDate  time.Time
}

// UpdateBudget updates an existing budget with validation
func (s *BudgetService) UpdateBudget(userID string, id uuid.UUID, input UpdateBudgetInput) (*domain.Budget, error) {
	if !domain.IsValidCategory(input.CategoryID) {
		return nil, domain.ErrInvalidCategory
	}

	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	current, err := s.budgetRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	// Moving to another category must not collide with its budget
	if input.CategoryID != current.CategoryID {
		existing, err := s.budgetRepo.GetByUser(userID)
		if err != nil {
			return nil, err
		}
		for _, b := range existing {
			if b.CategoryID == input.CategoryID {
				return nil, domain.ErrBudgetExists
			}
		}
	}

	updated, err := s.budgetRepo.Update(userID, id, &domain.UpdateBudgetData{
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		StartDate:  input.StartDate,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.BudgetUpdated(updated))

	return updated, nil
}

// DeleteBudget deletes a budget scoped to a user
func (s *BudgetService) DeleteBudget(userID string, id uuid.UUID) error {
	budget, err := s.budgetRepo.GetByID(userID, id)
	if err != nil {
		return err
	}

	if err := s.budgetRepo.Delete(userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.BudgetDeleted(budget))

	return nil
}

// GetBudgetProgress computes consumption for every budget of a user
// against the user's full transaction history
func (s *BudgetService) GetBudgetProgress(userID string) ([]insights.BudgetProgress, error) {
	budgets, err := s.budgetRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetByUser(userID, nil)
	if err != nil {
		return nil, err
	}

	progresses := make([]insights.BudgetProgress, len(budgets))
	for i, budget := range budgets {
		progresses[i] = insights.Progress(budget, transactions)
	}
	return progresses, nil
}
