package service

import (
	"context"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

// Authorization covers signup, login, token lifecycle and request authentication.
type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, TokenPair, error)
	Logout(ctx context.Context, userID, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Authenticate(ctx context.Context, accessToken string) (string, error)
}

// Accounts exposes profile read/update for the authenticated user.
type Accounts interface {
	GetProfile(ctx context.Context, authUserID, targetID string) (models.User, error)
	UpdateProfile(ctx context.Context, authUserID, targetID string, in ProfileUpdate) (models.User, error)
}

// Incomes is the CRUD contract for income records, always owner-scoped.
type Incomes interface {
	List(ctx context.Context, userID string) ([]models.Income, error)
	Create(ctx context.Context, userID string, in IncomeInput) (models.Income, error)
	Get(ctx context.Context, userID, id string) (models.Income, error)
	Update(ctx context.Context, userID, id string, in IncomeUpdate) (models.Income, error)
	Delete(ctx context.Context, userID, id string) error
}

// Expenditures is the CRUD contract for expenditure records, always owner-scoped.
type Expenditures interface {
	List(ctx context.Context, userID string) ([]models.Expenditure, error)
	Create(ctx context.Context, userID string, in ExpenditureInput) (models.Expenditure, error)
	Get(ctx context.Context, userID, id string) (models.Expenditure, error)
	Update(ctx context.Context, userID, id string, in ExpenditureUpdate) (models.Expenditure, error)
	Delete(ctx context.Context, userID, id string) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Accounts
	Incomes
	Expenditures
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.RevokedTokens, authCfg),
		Accounts:      NewAccountService(repos.Users),
		Incomes:       NewIncomeService(repos.Incomes),
		Expenditures:  NewExpenditureService(repos.Expenditures),
	}
}

//
// Inputs and results shared by handlers and services.
//

type SignUpInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

type ProfileUpdate struct {
	FirstName string
	LastName  string
	Username  string
}

type IncomeInput struct {
	NameOfRevenue string
	Amount        float64
}

// IncomeUpdate carries a partial merge: nil fields are left unchanged.
type IncomeUpdate struct {
	NameOfRevenue *string
	Amount        *float64
}

type ExpenditureInput struct {
	Category        string
	NameOfItem      string
	EstimatedAmount float64
}

// ExpenditureUpdate carries a partial merge: nil fields are left unchanged.
type ExpenditureUpdate struct {
	Category        *string
	NameOfItem      *string
	EstimatedAmount *float64
}

// TokenPair is issued on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
