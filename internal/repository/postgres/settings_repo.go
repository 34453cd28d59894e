package postgres

import (
	"context"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository implements domain.SettingsRepository using PostgreSQL
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		pool: pool,
	}
}

// GetByUser retrieves settings for a user
func (r *SettingsRepository) GetByUser(userID string) (*domain.UserSettings, error) {
	ctx := context.Background()

	var s domain.UserSettings
	var theme string
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, theme, currency, updated_at
		FROM user_settings
		WHERE user_id = $1`,
		userID,
	).Scan(&s.UserID, &theme, &s.Currency, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}

	s.Theme = domain.Theme(theme)
	return &s, nil
}

// Upsert creates or replaces settings for a user
func (r *SettingsRepository) Upsert(settings *domain.UserSettings) (*domain.UserSettings, error) {
	ctx := context.Background()

	var s domain.UserSettings
	var theme string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO user_settings (user_id, theme, currency)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET theme = EXCLUDED.theme, currency = EXCLUDED.currency, updated_at = NOW()
		RETURNING user_id, theme, currency, updated_at`,
		settings.UserID,
		string(settings.Theme),
		settings.Currency,
	).Scan(&s.UserID, &theme, &s.Currency, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	s.Theme = domain.Theme(theme)
	return &s, nil
}
