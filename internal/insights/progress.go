package insights

import (
	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BudgetProgress describes how far a budget has been consumed
type BudgetProgress struct {
	Budget        *domain.Budget  `json:"budget"`
	CategoryName  string          `json:"categoryName"`
	Spent         decimal.Decimal `json:"spent"`
	Remaining     decimal.Decimal `json:"remaining"`
	PercentUsed   decimal.Decimal `json:"percentUsed"`
	ActualPercent decimal.Decimal `json:"actualPercent"`
	Overspent     bool            `json:"overspent"`
}

// Progress computes consumption of a budget from the given transactions.
// Only expense transactions in the budget's category count, and only
// those dated on or after the budget's start date. The start date itself
// is included. A zero budget amount never divides: any spending against
// it reports both percentages as 100, no spending reports them as zero.
func Progress(budget *domain.Budget, transactions []*domain.Transaction) BudgetProgress {
	spent := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != domain.TransactionTypeExpense {
			continue
		}
		if tx.CategoryID != budget.CategoryID {
			continue
		}
		if tx.Date.Before(budget.StartDate) {
			continue
		}
		spent = spent.Add(tx.Amount)
	}

	progress := BudgetProgress{
		Budget:        budget,
		CategoryName:  domain.CategoryName(budget.CategoryID),
		Spent:         spent,
		Remaining:     budget.Amount.Sub(spent),
		PercentUsed:   decimal.Zero,
		ActualPercent: decimal.Zero,
		Overspent:     spent.GreaterThan(budget.Amount),
	}

	if budget.Amount.IsPositive() {
		actual := spent.Div(budget.Amount).Mul(hundred)
		progress.ActualPercent = actual
		if actual.GreaterThan(hundred) {
			progress.PercentUsed = hundred
		} else {
			progress.PercentUsed = actual
		}
	} else if spent.IsPositive() {
		progress.PercentUsed = hundred
		progress.ActualPercent = hundred
	}

	return progress
}
