package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense_tracker/internal/models"
)

type IncomeRepository struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

var _ Incomes = (*IncomeRepository)(nil)

const (
	insertIncomeSQL = `INSERT INTO incomes (id, user_id, name_of_revenue, amount, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`
	selectIncomesByUserSQL = `SELECT id, user_id, name_of_revenue, amount, created_at, updated_at
FROM incomes WHERE user_id = ? ORDER BY created_at DESC, id`
	selectIncomeSQL = `SELECT id, user_id, name_of_revenue, amount, created_at, updated_at
FROM incomes WHERE id = ? AND user_id = ?`
	updateIncomeSQL = `UPDATE incomes SET name_of_revenue = ?, amount = ?, updated_at = ? WHERE id = ? AND user_id = ?`
	deleteIncomeSQL = `DELETE FROM incomes WHERE id = ? AND user_id = ?`
)

func (r *IncomeRepository) Create(ctx context.Context, in models.Income) error {
	_, err := r.db.ExecContext(ctx, insertIncomeSQL,
		in.ID, in.UserID, in.NameOfRevenue, in.Amount,
		in.CreatedAt.UTC(), in.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert income %q: %w", in.ID, err)
	}
	return nil
}

// ListByUser returns the user's incomes, newest first, id as tiebreaker.
func (r *IncomeRepository) ListByUser(ctx context.Context, userID string) ([]models.Income, error) {
	rows, err := r.db.QueryContext(ctx, selectIncomesByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list incomes for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Income, 0, 16)
	for rows.Next() {
		var in models.Income
		if err := rows.Scan(&in.ID, &in.UserID, &in.NameOfRevenue, &in.Amount,
			&in.CreatedAt, &in.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one income scoped to its owner. Returns (nil, nil) when the
// row is absent or belongs to a different user; callers cannot tell the two
// apart, which keeps other users' records unguessable.
func (r *IncomeRepository) GetByID(ctx context.Context, userID, id string) (*models.Income, error) {
	var in models.Income
	err := r.db.QueryRowContext(ctx, selectIncomeSQL, id, userID).Scan(
		&in.ID, &in.UserID, &in.NameOfRevenue, &in.Amount, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select income %q: %w", id, err)
	}
	return &in, nil
}

// Update writes the merged record in a single statement; the WHERE clause
// keeps the write owner-scoped. Returns false when no row matched.
func (r *IncomeRepository) Update(ctx context.Context, in models.Income) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateIncomeSQL,
		in.NameOfRevenue, in.Amount, in.UpdatedAt.UTC(), in.ID, in.UserID)
	if err != nil {
		return false, fmt.Errorf("update income %q: %w", in.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for income %q: %w", in.ID, err)
	}
	return n > 0, nil
}

func (r *IncomeRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteIncomeSQL, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete income %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for income %q: %w", id, err)
	}
	return n > 0, nil
}
