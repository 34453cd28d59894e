package domain

import "errors"

// Domain errors
var (
	ErrNotFound               = errors.New("resource not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrSettingsNotFound       = errors.New("settings not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInternalError          = errors.New("internal error")
	ErrDescriptionRequired    = errors.New("description is required")
	ErrDescriptionTooLong     = errors.New("description exceeds maximum length")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidCategory        = errors.New("invalid category")
	ErrInvalidPeriod          = errors.New("invalid budget period")
	ErrInvalidTheme           = errors.New("invalid theme")
	ErrInvalidCurrency        = errors.New("invalid currency")
	ErrBudgetExists           = errors.New("budget already exists for category")
	ErrSuggesterUnavailable   = errors.New("category suggester unavailable")
)

// Validation constants
const (
	MaxDescriptionLength = 255
)
