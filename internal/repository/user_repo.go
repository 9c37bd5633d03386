package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense_tracker/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, email, username, first_name, last_name, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectUserSQL = `SELECT id, email, username, first_name, last_name, password_hash, created_at, updated_at FROM users`
	updateUserSQL = `UPDATE users SET username = ?, first_name = ?, last_name = ?, updated_at = ? WHERE id = ?`
)

// Create inserts a new user row. Uniqueness of email/username is enforced by
// the schema; violations surface as driver errors.
func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.Email, u.Username, u.FirstName, u.LastName, u.PasswordHash,
		u.CreatedAt.UTC(), u.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUserSQL+` WHERE id = ?`, id)
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserSQL+` WHERE email = ?`, email)
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, selectUserSQL+` WHERE username = ?`, username)
}

// Update persists mutable profile fields (username, first/last name).
// Email and password hash are immutable through this path.
func (r *UserRepository) Update(ctx context.Context, u models.User) error {
	if _, err := r.db.ExecContext(ctx, updateUserSQL,
		u.Username, u.FirstName, u.LastName, u.UpdatedAt.UTC(), u.ID); err != nil {
		return fmt.Errorf("update user %q: %w", u.ID, err)
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}
