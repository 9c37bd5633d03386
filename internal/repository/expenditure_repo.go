package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense_tracker/internal/models"
)

type ExpenditureRepository struct {
	db *sql.DB
}

func NewExpenditureRepository(db *sql.DB) *ExpenditureRepository {
	return &ExpenditureRepository{db: db}
}

var _ Expenditures = (*ExpenditureRepository)(nil)

const (
	insertExpenditureSQL = `INSERT INTO expenditures (id, user_id, category, name_of_item, estimated_amount, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectExpendituresByUserSQL = `SELECT id, user_id, category, name_of_item, estimated_amount, created_at, updated_at
FROM expenditures WHERE user_id = ? ORDER BY created_at DESC, id`
	selectExpenditureSQL = `SELECT id, user_id, category, name_of_item, estimated_amount, created_at, updated_at
FROM expenditures WHERE id = ? AND user_id = ?`
	updateExpenditureSQL = `UPDATE expenditures SET category = ?, name_of_item = ?, estimated_amount = ?, updated_at = ? WHERE id = ? AND user_id = ?`
	deleteExpenditureSQL = `DELETE FROM expenditures WHERE id = ? AND user_id = ?`
)

func (r *ExpenditureRepository) Create(ctx context.Context, e models.Expenditure) error {
	_, err := r.db.ExecContext(ctx, insertExpenditureSQL,
		e.ID, e.UserID, e.Category, e.NameOfItem, e.EstimatedAmount,
		e.CreatedAt.UTC(), e.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert expenditure %q: %w", e.ID, err)
	}
	return nil
}

func (r *ExpenditureRepository) ListByUser(ctx context.Context, userID string) ([]models.Expenditure, error) {
	rows, err := r.db.QueryContext(ctx, selectExpendituresByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenditures for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Expenditure, 0, 16)
	for rows.Next() {
		var e models.Expenditure
		if err := rows.Scan(&e.ID, &e.UserID, &e.Category, &e.NameOfItem,
			&e.EstimatedAmount, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one expenditure scoped to its owner. Returns (nil, nil)
// when absent or owned by a different user.
func (r *ExpenditureRepository) GetByID(ctx context.Context, userID, id string) (*models.Expenditure, error) {
	var e models.Expenditure
	err := r.db.QueryRowContext(ctx, selectExpenditureSQL, id, userID).Scan(
		&e.ID, &e.UserID, &e.Category, &e.NameOfItem, &e.EstimatedAmount,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select expenditure %q: %w", id, err)
	}
	return &e, nil
}

func (r *ExpenditureRepository) Update(ctx context.Context, e models.Expenditure) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateExpenditureSQL,
		e.Category, e.NameOfItem, e.EstimatedAmount, e.UpdatedAt.UTC(), e.ID, e.UserID)
	if err != nil {
		return false, fmt.Errorf("update expenditure %q: %w", e.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for expenditure %q: %w", e.ID, err)
	}
	return n > 0, nil
}

func (r *ExpenditureRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteExpenditureSQL, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete expenditure %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for expenditure %q: %w", id, err)
	}
	return n > 0, nil
}
