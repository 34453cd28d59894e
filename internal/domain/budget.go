package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

type Budget struct {
	ID         uuid.UUID       `json:"id"`
	UserID     string          `json:"userId"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// UpdateBudgetData holds the mutable fields of a budget
type UpdateBudgetData struct {
	CategoryID string
	Amount     decimal.Decimal
	StartDate  time.Time
}

type BudgetRepository interface {
	Create(budget *Budget) (*Budget, error)
	GetByID(userID string, id uuid.UUID) (*Budget, error)
	GetByUser(userID string) ([]*Budget, error)
	Update(userID string, id uuid.UUID, data *UpdateBudgetData) (*Budget, error)
	Delete(userID string, id uuid.UUID) error
}
