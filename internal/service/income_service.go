package service

import (
	"context"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"

	"github.com/google/uuid"
)

// IncomeService implements owner-scoped CRUD for income records. The owner is
// always the authenticated user; a client-supplied owner is never consulted.
type IncomeService struct {
	repo repository.Incomes
}

func NewIncomeService(repo repository.Incomes) *IncomeService {
	return &IncomeService{repo: repo}
}

const maxRevenueNameLen = 120

func (s *IncomeService) List(ctx context.Context, userID string) ([]models.Income, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *IncomeService) Create(ctx context.Context, userID string, in IncomeInput) (models.Income, error) {
	name, err := validateName("revenue name", in.NameOfRevenue, maxRevenueNameLen)
	if err != nil {
		return models.Income{}, err
	}
	if err := validateAmount("amount", in.Amount); err != nil {
		return models.Income{}, err
	}

	now := time.Now().UTC()
	rec := models.Income{
		ID:            uuid.NewString(),
		UserID:        userID,
		NameOfRevenue: name,
		Amount:        in.Amount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return models.Income{}, err
	}
	return rec, nil
}

func (s *IncomeService) Get(ctx context.Context, userID, id string) (models.Income, error) {
	rec, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return models.Income{}, err
	}
	if rec == nil {
		return models.Income{}, ErrNotFound
	}
	return *rec, nil
}

// Update merges only the supplied fields into the stored record.
func (s *IncomeService) Update(ctx context.Context, userID, id string, in IncomeUpdate) (models.Income, error) {
	rec, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return models.Income{}, err
	}
	if rec == nil {
		return models.Income{}, ErrNotFound
	}

	if in.NameOfRevenue != nil {
		name, err := validateName("revenue name", *in.NameOfRevenue, maxRevenueNameLen)
		if err != nil {
			return models.Income{}, err
		}
		rec.NameOfRevenue = name
	}
	if in.Amount != nil {
		if err := validateAmount("amount", *in.Amount); err != nil {
			return models.Income{}, err
		}
		rec.Amount = *in.Amount
	}
	rec.UpdatedAt = time.Now().UTC()

	ok, err := s.repo.Update(ctx, *rec)
	if err != nil {
		return models.Income{}, err
	}
	if !ok {
		// Row vanished between read and write.
		return models.Income{}, ErrNotFound
	}
	return *rec, nil
}

func (s *IncomeService) Delete(ctx context.Context, userID, id string) error {
	ok, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
