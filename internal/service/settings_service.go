package service

import (
	"errors"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/Minjxnx/budget-wise/internal/websocket"
)

// SettingsService handles user settings business logic
type SettingsService struct {
	settingsRepo   domain.SettingsRepository
	eventPublisher websocket.EventPublisher
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo domain.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *SettingsService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *SettingsService) publishEvent(userID string, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// GetSettings retrieves settings for a user, projecting defaults when
// the user has never saved any
func (s *SettingsService) GetSettings(userID string) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return domain.DefaultSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettingsInput holds partial settings updates; nil fields keep
// their current value
type UpdateSettingsInput struct {
	Theme    *domain.Theme
	Currency *string
}

// UpdateSettings applies a partial update on top of the user's current
// (or default) settings
func (s *SettingsService) UpdateSettings(userID string, input UpdateSettingsInput) (*domain.UserSettings, error) {
	if input.Theme != nil {
		if *input.Theme != domain.ThemeLight && *input.Theme != domain.ThemeDark {
			return nil, domain.ErrInvalidTheme
		}
	}
	if input.Currency != nil {
		if !domain.IsValidCurrency(*input.Currency) {
			return nil, domain.ErrInvalidCurrency
		}
	}

	current, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	if input.Theme != nil {
		current.Theme = *input.Theme
	}
	if input.Currency != nil {
		current.Currency = *input.Currency
	}

	updated, err := s.settingsRepo.Upsert(current)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.SettingsUpdated(updated))

	return updated, nil
}

// CurrencySymbol returns the display symbol for the user's currency
func (s *SettingsService) CurrencySymbol(userID string) (string, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return "", err
	}
	return domain.CurrencySymbol(settings.Currency), nil
}
