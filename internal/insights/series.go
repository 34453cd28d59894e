package insights

import (
	"sort"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/util"
	"github.com/shopspring/decimal"
)

// MonthBucket holds income and expense totals for one calendar month
type MonthBucket struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlySeries buckets transactions into calendar months and returns
// the buckets in ascending chronological order. Every month that has at
// least one transaction gets a bucket; the series is not windowed here.
// Callers wanting a trailing view slice with LastN.
func MonthlySeries(transactions []*domain.Transaction) []MonthBucket {
	buckets := make(map[string]*MonthBucket)

	for _, tx := range transactions {
		key := util.MonthKey(tx.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &MonthBucket{
				Key:     key,
				Label:   util.MonthLabel(tx.Date),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			buckets[key] = bucket
		}
		switch tx.Type {
		case domain.TransactionTypeIncome:
			bucket.Income = bucket.Income.Add(tx.Amount)
		case domain.TransactionTypeExpense:
			bucket.Expense = bucket.Expense.Add(tx.Amount)
		}
	}

	series := make([]MonthBucket, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, *bucket)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Key < series[j].Key
	})

	return series
}

// LastN returns the trailing n buckets of an ascending series. When the
// series holds fewer than n buckets the whole series is returned.
func LastN(series []MonthBucket, n int) []MonthBucket {
	if n < 0 {
		n = 0
	}
	if n >= len(series) {
		n = len(series)
	}
	out := make([]MonthBucket, n)
	copy(out, series[len(series)-n:])
	return out
}
