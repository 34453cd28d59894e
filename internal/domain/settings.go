package domain

import "time"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultCurrency is applied when a user has never saved settings
const DefaultCurrency = "USD"

type UserSettings struct {
	UserID    string    `json:"userId"`
	Theme     Theme     `json:"theme"`
	Currency  string    `json:"currency"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings returns the settings projected for a user with no stored row
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:   userID,
		Theme:    ThemeLight,
		Currency: DefaultCurrency,
	}
}

type SettingsRepository interface {
	GetByUser(userID string) (*UserSettings, error)
	Upsert(settings *UserSettings) (*UserSettings, error)
}
