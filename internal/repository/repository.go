package repository

import (
	"context"
	"database/sql"
	"time"

	"expense_tracker/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, u models.User) error
}

type Incomes interface {
	Create(ctx context.Context, in models.Income) error
	ListByUser(ctx context.Context, userID string) ([]models.Income, error)
	GetByID(ctx context.Context, userID, id string) (*models.Income, error)
	Update(ctx context.Context, in models.Income) (bool, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type Expenditures interface {
	Create(ctx context.Context, e models.Expenditure) error
	ListByUser(ctx context.Context, userID string) ([]models.Expenditure, error)
	GetByID(ctx context.Context, userID, id string) (*models.Expenditure, error)
	Update(ctx context.Context, e models.Expenditure) (bool, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

// RevokedTokens is the refresh-token blacklist, keyed by JWT ID (jti).
// Revoke reports whether the jti was newly blacklisted.
type RevokedTokens interface {
	Revoke(ctx context.Context, jti, userID string, expiresAt time.Time) (bool, error)
}

type Repository struct {
	Users         Users
	Incomes       Incomes
	Expenditures  Expenditures
	RevokedTokens RevokedTokens
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:         NewUserRepository(db),
		Incomes:       NewIncomeRepository(db),
		Expenditures:  NewExpenditureRepository(db),
		RevokedTokens: NewRevokedTokenRepository(db),
	}
}
