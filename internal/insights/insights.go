// Package insights computes aggregate views over transactions. All
// functions are pure: they never touch storage and never fail on
// empty or degenerate input.
package insights

import (
	"sort"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/shopspring/decimal"
)

// TotalByType sums the amounts of all transactions of the given type
func TotalByType(transactions []*domain.Transaction, txType domain.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == txType {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// NetBalance returns total income minus total expenses
func NetBalance(transactions []*domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case domain.TransactionTypeIncome:
			balance = balance.Add(tx.Amount)
		case domain.TransactionTypeExpense:
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance
}

// CategorySpend is the total spent in one category
type CategorySpend struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Color        string          `json:"color"`
}

// SpendingByCategory groups expense transactions by category and returns
// per-category totals sorted by amount descending. Income transactions
// are ignored. Ties keep the order in which categories first appear in
// the input, so repeated calls over the same data yield the same order.
func SpendingByCategory(transactions []*domain.Transaction) []CategorySpend {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, tx := range transactions {
		if tx.Type != domain.TransactionTypeExpense {
			continue
		}
		if _, seen := totals[tx.CategoryID]; !seen {
			order = append(order, tx.CategoryID)
		}
		totals[tx.CategoryID] = totals[tx.CategoryID].Add(tx.Amount)
	}

	spends := make([]CategorySpend, 0, len(order))
	for _, id := range order {
		spends = append(spends, CategorySpend{
			CategoryID:   id,
			CategoryName: domain.CategoryName(id),
			Amount:       totals[id],
			Color:        domain.CategoryColor(id),
		})
	}

	sort.SliceStable(spends, func(i, j int) bool {
		return spends[i].Amount.GreaterThan(spends[j].Amount)
	})

	return spends
}

// TopCategories returns the first n entries of a spending breakdown.
// Passing the full breakdown keeps tie order intact since the input
// is already stably sorted.
func TopCategories(spends []CategorySpend, n int) []CategorySpend {
	if n < 0 {
		n = 0
	}
	if n > len(spends) {
		n = len(spends)
	}
	out := make([]CategorySpend, n)
	copy(out, spends[:n])
	return out
}
