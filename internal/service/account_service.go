package service

import (
	"context"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

// AccountService handles profile reads and updates. A request for any user id
// other than the caller's own answers not-found, so profile ids cannot be
// enumerated.
type AccountService struct {
	users repository.Users
}

func NewAccountService(users repository.Users) *AccountService {
	return &AccountService{users: users}
}

func (s *AccountService) GetProfile(ctx context.Context, authUserID, targetID string) (models.User, error) {
	if targetID != authUserID {
		return models.User{}, ErrNotFound
	}
	u, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrNotFound
	}
	return *u, nil
}

// UpdateProfile changes first/last name and username. Email stays immutable.
func (s *AccountService) UpdateProfile(ctx context.Context, authUserID, targetID string, in ProfileUpdate) (models.User, error) {
	if targetID != authUserID {
		return models.User{}, ErrNotFound
	}

	firstName, err := validateName("first name", in.FirstName, maxNameLen)
	if err != nil {
		return models.User{}, err
	}
	lastName, err := validateName("last name", in.LastName, maxNameLen)
	if err != nil {
		return models.User{}, err
	}
	username, err := validateUsername(in.Username)
	if err != nil {
		return models.User{}, err
	}

	u, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrNotFound
	}

	// Username must stay unique across other users.
	if username != u.Username {
		other, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			return models.User{}, err
		}
		if other != nil && other.ID != u.ID {
			return models.User{}, invalidf("a user with this username already exists")
		}
	}

	u.FirstName = firstName
	u.LastName = lastName
	u.Username = username
	u.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, *u); err != nil {
		return models.User{}, err
	}
	return *u, nil
}
