package testutil

import (
	"context"
	"time"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/google/uuid"
)

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions map[uuid.UUID]*domain.Transaction
	ByUser       map[string][]*domain.Transaction
	CreateFn     func(transaction *domain.Transaction) (*domain.Transaction, error)
	GetByUserFn  func(userID string, filters *domain.TransactionFilters) ([]*domain.Transaction, error)
	DeleteFn     func(userID string, id uuid.UUID) error
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[uuid.UUID]*domain.Transaction),
		ByUser:       make(map[string][]*domain.Transaction),
	}
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFn != nil {
		return m.CreateFn(transaction)
	}
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	now := time.Now()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
	m.Transactions[transaction.ID] = transaction
	m.ByUser[transaction.UserID] = append(m.ByUser[transaction.UserID], transaction)
	return transaction, nil
}

// GetByID retrieves a transaction by ID scoped to a user
func (m *MockTransactionRepository) GetByID(userID string, id uuid.UUID) (*domain.Transaction, error) {
	tx, ok := m.Transactions[id]
	if !ok || tx.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	return tx, nil
}

// GetByUser retrieves all transactions for a user with optional filters
func (m *MockTransactionRepository) GetByUser(userID string, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	if m.GetByUserFn != nil {
		return m.GetByUserFn(userID, filters)
	}
	result := make([]*domain.Transaction, 0)
	for _, tx := range m.ByUser[userID] {
		if filters != nil {
			if filters.CategoryID != nil && tx.CategoryID != *filters.CategoryID {
				continue
			}
			if filters.Type != nil && tx.Type != *filters.Type {
				continue
			}
			if filters.StartDate != nil && tx.Date.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && tx.Date.After(*filters.EndDate) {
				continue
			}
		}
		result = append(result, tx)
	}
	return result, nil
}

// Delete removes a transaction scoped to a user
func (m *MockTransactionRepository) Delete(userID string, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(userID, id)
	}
	tx, ok := m.Transactions[id]
	if !ok || tx.UserID != userID {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	byUser := m.ByUser[userID]
	for i, candidate := range byUser {
		if candidate.ID == id {
			m.ByUser[userID] = append(byUser[:i], byUser[i+1:]...)
			break
		}
	}
	return nil
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	m.Transactions[transaction.ID] = transaction
	m.ByUser[transaction.UserID] = append(m.ByUser[transaction.UserID], transaction)
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets     map[uuid.UUID]*domain.Budget
	ByUser      map[string][]*domain.Budget
	CreateFn    func(budget *domain.Budget) (*domain.Budget, error)
	GetByUserFn func(userID string) ([]*domain.Budget, error)
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[uuid.UUID]*domain.Budget),
		ByUser:  make(map[string][]*domain.Budget),
	}
}

// Create creates a new budget
func (m *MockBudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	if m.CreateFn != nil {
		return m.CreateFn(budget)
	}
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}
	now := time.Now()
	budget.CreatedAt = now
	budget.UpdatedAt = now
	m.Budgets[budget.ID] = budget
	m.ByUser[budget.UserID] = append(m.ByUser[budget.UserID], budget)
	return budget, nil
}

// GetByID retrieves a budget by ID scoped to a user
func (m *MockBudgetRepository) GetByID(userID string, id uuid.UUID) (*domain.Budget, error) {
	budget, ok := m.Budgets[id]
	if !ok || budget.UserID != userID {
		return nil, domain.ErrBudgetNotFound
	}
	return budget, nil
}

// GetByUser retrieves all budgets for a user
func (m *MockBudgetRepository) GetByUser(userID string) ([]*domain.Budget, error) {
	if m.GetByUserFn != nil {
		return m.GetByUserFn(userID)
	}
	result := make([]*domain.Budget, 0, len(m.ByUser[userID]))
	result = append(result, m.ByUser[userID]...)
	return result, nil
}

// Update updates a budget scoped to a user
func (m *MockBudgetRepository) Update(userID string, id uuid.UUID, data *domain.UpdateBudgetData) (*domain.Budget, error) {
	budget, ok := m.Budgets[id]
	if !ok || budget.UserID != userID {
		return nil, domain.ErrBudgetNotFound
	}
	budget.CategoryID = data.CategoryID
	budget.Amount = data.Amount
	budget.StartDate = data.StartDate
	budget.UpdatedAt = time.Now()
	return budget, nil
}

// Delete removes a budget scoped to a user
func (m *MockBudgetRepository) Delete(userID string, id uuid.UUID) error {
	budget, ok := m.Budgets[id]
	if !ok || budget.UserID != userID {
		return domain.ErrBudgetNotFound
	}
	delete(m.Budgets, id)
	byUser := m.ByUser[userID]
	for i, candidate := range byUser {
		if candidate.ID == id {
			m.ByUser[userID] = append(byUser[:i], byUser[i+1:]...)
			break
		}
	}
	return nil
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}
	m.Budgets[budget.ID] = budget
	m.ByUser[budget.UserID] = append(m.ByUser[budget.UserID], budget)
}

// MockSettingsRepository is a mock implementation of domain.SettingsRepository
type MockSettingsRepository struct {
	Settings    map[string]*domain.UserSettings
	GetByUserFn func(userID string) (*domain.UserSettings, error)
	UpsertFn    func(settings *domain.UserSettings) (*domain.UserSettings, error)
}

// NewMockSettingsRepository creates a new MockSettingsRepository
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{
		Settings: make(map[string]*domain.UserSettings),
	}
}

// GetByUser retrieves settings for a user
func (m *MockSettingsRepository) GetByUser(userID string) (*domain.UserSettings, error) {
	if m.GetByUserFn != nil {
		return m.GetByUserFn(userID)
	}
	if settings, ok := m.Settings[userID]; ok {
		return settings, nil
	}
	return nil, domain.ErrSettingsNotFound
}

// Upsert creates or replaces settings for a user
func (m *MockSettingsRepository) Upsert(settings *domain.UserSettings) (*domain.UserSettings, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(settings)
	}
	settings.UpdatedAt = time.Now()
	m.Settings[settings.UserID] = settings
	return settings, nil
}

// AddSettings adds settings to the mock repository (helper for tests)
func (m *MockSettingsRepository) AddSettings(settings *domain.UserSettings) {
	m.Settings[settings.UserID] = settings
}

// MockSuggester is a mock implementation of domain.CategorySuggester
type MockSuggester struct {
	Suggestion *domain.CategorySuggestion
	Err        error
	Available  bool
	LastInput  string
	SuggestFn  func(ctx context.Context, description string) (*domain.CategorySuggestion, error)
}

// NewMockSuggester creates an available MockSuggester returning the given suggestion
func NewMockSuggester(suggestion *domain.CategorySuggestion) *MockSuggester {
	return &MockSuggester{
		Suggestion: suggestion,
		Available:  true,
	}
}

// SuggestCategory returns the configured suggestion or error
func (m *MockSuggester) SuggestCategory(ctx context.Context, description string) (*domain.CategorySuggestion, error) {
	m.LastInput = description
	if m.SuggestFn != nil {
		return m.SuggestFn(ctx, description)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Suggestion, nil
}

// IsAvailable reports whether the mock is configured as available
func (m *MockSuggester) IsAvailable() bool {
	return m.Available
}
