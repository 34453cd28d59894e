package domain

// Currency describes a supported display currency
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// FallbackCurrencySymbol is used when a currency code is not recognized
const FallbackCurrencySymbol = "$"

var supportedCurrencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr"},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$"},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr"},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩"},
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺"},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$"},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R"},
	{Code: "PHP", Name: "Philippine Peso", Symbol: "₱"},
	{Code: "CZK", Name: "Czech Koruna", Symbol: "Kč"},
	{Code: "PLN", Name: "Polish Zloty", Symbol: "zł"},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿"},
	{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp"},
	{Code: "HUF", Name: "Hungarian Forint", Symbol: "Ft"},
	{Code: "ILS", Name: "Israeli New Shekel", Symbol: "₪"},
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr."},
	{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM"},
	{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ"},
	{Code: "LKR", Name: "Sri Lankan Rupee", Symbol: "Rs"},
}

var currencyIndex = func() map[string]Currency {
	idx := make(map[string]Currency, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		idx[c.Code] = c
	}
	return idx
}()

// Currencies returns all supported currencies
func Currencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsValidCurrency reports whether the given code is supported
func IsValidCurrency(code string) bool {
	_, ok := currencyIndex[code]
	return ok
}

// CurrencySymbol resolves a currency code to its symbol, falling back
// to FallbackCurrencySymbol for unknown codes
func CurrencySymbol(code string) string {
	if c, ok := currencyIndex[code]; ok {
		return c.Symbol
	}
	return FallbackCurrencySymbol
}
