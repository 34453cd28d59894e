package postgres

import (
	"context"
	"fmt"

	"github.com/Minjxnx/budget-wise/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{
		pool: pool,
	}
}

// Create creates a new budget
func (r *BudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(budget.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO budgets (user_id, category_id, amount, period, start_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, category_id, amount, period, start_date, created_at, updated_at`,
		budget.UserID,
		budget.CategoryID,
		amount,
		string(budget.Period),
		budget.StartDate,
	)
	return scanBudget(row)
}

// GetByID retrieves a budget by its ID scoped to a user
func (r *BudgetRepository) GetByID(userID string, id uuid.UUID) (*domain.Budget, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, category_id, amount, period, start_date, created_at, updated_at
		FROM budgets
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	budget, err := scanBudget(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// GetByUser retrieves all budgets for a user, oldest first
func (r *BudgetRepository) GetByUser(userID string) ([]*domain.Budget, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, category_id, amount, period, start_date, created_at, updated_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := make([]*domain.Budget, 0)
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

// Update updates a budget scoped to a user
func (r *BudgetRepository) Update(userID string, id uuid.UUID, data *domain.UpdateBudgetData) (*domain.Budget, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(data.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE budgets
		SET category_id = $3, amount = $4, start_date = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, category_id, amount, period, start_date, created_at, updated_at`,
		id,
		userID,
		data.CategoryID,
		amount,
		data.StartDate,
	)
	budget, err := scanBudget(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// Delete removes a budget scoped to a user
func (r *BudgetRepository) Delete(userID string, id uuid.UUID) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `
		DELETE FROM budgets
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var b domain.Budget
	var amount pgtype.Numeric
	var period string

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.CategoryID,
		&amount,
		&period,
		&b.StartDate,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Amount = pgNumericToDecimal(amount)
	b.Period = domain.BudgetPeriod(period)
	return &b, nil
}
