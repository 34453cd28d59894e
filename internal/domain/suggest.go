package domain

import "context"

// CategorySuggestion is a proposed category for a transaction description
type CategorySuggestion struct {
	CategoryID string  `json:"categoryId"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// CategorySuggester proposes a spending category for a free-text
// transaction description. Implementations call an external model,
// so SuggestCategory takes a context for cancellation.
type CategorySuggester interface {
	SuggestCategory(ctx context.Context, description string) (*CategorySuggestion, error)
	IsAvailable() bool
}
