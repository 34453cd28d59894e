package service

import (
	"context"
	"strings"

	"github.com/Minjxnx/budget-wise/internal/domain"
)

// SuggestionService wraps the AI category suggester with validation
type SuggestionService struct {
	suggester domain.CategorySuggester
}

// NewSuggestionService creates a new SuggestionService
func NewSuggestionService(suggester domain.CategorySuggester) *SuggestionService {
	return &SuggestionService{
		suggester: suggester,
	}
}

// IsAvailable reports whether suggestions can be served
func (s *SuggestionService) IsAvailable() bool {
	return s.suggester != nil && s.suggester.IsAvailable()
}

// SuggestCategory suggests a category for a transaction description
func (s *SuggestionService) SuggestCategory(ctx context.Context, description string) (*domain.CategorySuggestion, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, domain.ErrDescriptionTooLong
	}

	if !s.IsAvailable() {
		return nil, domain.ErrSuggesterUnavailable
	}

	suggestion, err := s.suggester.SuggestCategory(ctx, description)
	if err != nil {
		return nil, err
	}

	// The model occasionally invents category IDs; fall back to the
	// catch-all bucket instead of surfacing them
	if !domain.IsValidCategory(suggestion.CategoryID) {
		suggestion.CategoryID = "other"
		suggestion.Confidence = 0
	}

	return suggestion, nil
}
