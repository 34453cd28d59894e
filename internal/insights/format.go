package insights

import "github.com/shopspring/decimal"

// Presentation defaults used by the dashboard and report endpoints
const (
	TopCategoryCount = 5
	TrailingMonths   = 6
)

// FormatAmount renders an amount for display with a currency symbol and
// two decimal places, e.g. "$1234.50"
func FormatAmount(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
