package service

import (
	"context"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"

	"github.com/google/uuid"
)

// ExpenditureService implements owner-scoped CRUD for expenditure records.
type ExpenditureService struct {
	repo repository.Expenditures
}

func NewExpenditureService(repo repository.Expenditures) *ExpenditureService {
	return &ExpenditureService{repo: repo}
}

const (
	maxItemNameLen = 120
	maxCategoryLen = 60
)

func (s *ExpenditureService) List(ctx context.Context, userID string) ([]models.Expenditure, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ExpenditureService) Create(ctx context.Context, userID string, in ExpenditureInput) (models.Expenditure, error) {
	category, err := validateName("category", in.Category, maxCategoryLen)
	if err != nil {
		return models.Expenditure{}, err
	}
	name, err := validateName("item name", in.NameOfItem, maxItemNameLen)
	if err != nil {
		return models.Expenditure{}, err
	}
	if err := validateAmount("estimated amount", in.EstimatedAmount); err != nil {
		return models.Expenditure{}, err
	}

	now := time.Now().UTC()
	rec := models.Expenditure{
		ID:              uuid.NewString(),
		UserID:          userID,
		Category:        category,
		NameOfItem:      name,
		EstimatedAmount: in.EstimatedAmount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return models.Expenditure{}, err
	}
	return rec, nil
}

func (s *ExpenditureService) Get(ctx context.Context, userID, id string) (models.Expenditure, error) {
	rec, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return models.Expenditure{}, err
	}
	if rec == nil {
		return models.Expenditure{}, ErrNotFound
	}
	return *rec, nil
}

// Update merges only the supplied fields into the stored record.
func (s *ExpenditureService) Update(ctx context.Context, userID, id string, in ExpenditureUpdate) (models.Expenditure, error) {
	rec, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return models.Expenditure{}, err
	}
	if rec == nil {
		return models.Expenditure{}, ErrNotFound
	}

	if in.Category != nil {
		category, err := validateName("category", *in.Category, maxCategoryLen)
		if err != nil {
			return models.Expenditure{}, err
		}
		rec.Category = category
	}
	if in.NameOfItem != nil {
		name, err := validateName("item name", *in.NameOfItem, maxItemNameLen)
		if err != nil {
			return models.Expenditure{}, err
		}
		rec.NameOfItem = name
	}
	if in.EstimatedAmount != nil {
		if err := validateAmount("estimated amount", *in.EstimatedAmount); err != nil {
			return models.Expenditure{}, err
		}
		rec.EstimatedAmount = *in.EstimatedAmount
	}
	rec.UpdatedAt = time.Now().UTC()

	ok, err := s.repo.Update(ctx, *rec)
	if err != nil {
		return models.Expenditure{}, err
	}
	if !ok {
		return models.Expenditure{}, ErrNotFound
	}
	return *rec, nil
}

func (s *ExpenditureService) Delete(ctx context.Context, userID, id string) error {
	ok, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
