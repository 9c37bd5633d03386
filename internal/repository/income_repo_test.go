package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"expense_tracker/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockIncomeRepo(t *testing.T) (*IncomeRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewIncomeRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestIncomeRepository_ListByUser(t *testing.T) {
	repo, mock, cleanup := newMockIncomeRepo(t)
	defer cleanup()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "name_of_revenue", "amount", "created_at", "updated_at",
	}).
		AddRow("i2", "u1", "bonus", 50.25, now, now).
		AddRow("i1", "u1", "salary", 100.0, now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(selectIncomesByUserSQL)).
		WithArgs("u1").
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 incomes, got %d", len(list))
	}
	if list[0].ID != "i2" || list[1].ID != "i1" {
		t.Fatalf("order not preserved: %+v", list)
	}
	if list[0].Amount != 50.25 {
		t.Fatalf("wrong amount scanned: %v", list[0].Amount)
	}
}

func TestIncomeRepository_GetByID(t *testing.T) {
	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantIncome bool
		wantErr    bool
	}{
		{
			name: "found",
			mockExpect: func(m sqlmock.Sqlmock) {
				now := time.Now().UTC()
				rows := sqlmock.NewRows([]string{
					"id", "user_id", "name_of_revenue", "amount", "created_at", "updated_at",
				}).AddRow("i1", "u1", "salary", 100.0, now, now)
				m.ExpectQuery(regexp.QuoteMeta(selectIncomeSQL)).
					WithArgs("i1", "u1").
					WillReturnRows(rows)
			},
			wantIncome: true,
		},
		{
			name: "absent or foreign row",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectIncomeSQL)).
					WithArgs("i1", "u1").
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name: "query error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectIncomeSQL)).
					WithArgs("i1", "u1").
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockIncomeRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			in, err := repo.GetByID(context.Background(), "u1", "i1")

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantIncome && in == nil {
				t.Fatalf("expected income, got nil")
			}
			if !tt.wantIncome && in != nil {
				t.Fatalf("expected nil income, got %+v", in)
			}
		})
	}
}

func TestIncomeRepository_Update(t *testing.T) {
	tests := []struct {
		name        string
		result      driver.Result
		wantMatched bool
	}{
		{"row matched", sqlmock.NewResult(0, 1), true},
		{"no row matched", sqlmock.NewResult(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockIncomeRepo(t)
			defer cleanup()

			in := models.Income{
				ID:            "i1",
				UserID:        "u1",
				NameOfRevenue: "salary",
				Amount:        150.25,
				UpdatedAt:     time.Now().UTC(),
			}
			mock.ExpectExec(regexp.QuoteMeta(updateIncomeSQL)).
				WithArgs(in.NameOfRevenue, in.Amount, sqlmock.AnyArg(), in.ID, in.UserID).
				WillReturnResult(tt.result)

			matched, err := repo.Update(context.Background(), in)
			if err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if matched != tt.wantMatched {
				t.Fatalf("matched = %v, want %v", matched, tt.wantMatched)
			}
		})
	}
}

func TestIncomeRepository_Delete(t *testing.T) {
	repo, mock, cleanup := newMockIncomeRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(deleteIncomeSQL)).
		WithArgs("i1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	matched, err := repo.Delete(context.Background(), "u1", "i1")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !matched {
		t.Fatalf("expected delete to match a row")
	}
}
