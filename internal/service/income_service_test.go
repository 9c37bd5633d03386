package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"expense_tracker/internal/models"
)

// fakeIncomes is an in-memory repository.Incomes. Lookups are scoped by owner
// the same way the SQL implementation scopes them.
type fakeIncomes struct {
	byID map[string]models.Income
	err  error
}

func newFakeIncomes() *fakeIncomes {
	return &fakeIncomes{byID: make(map[string]models.Income)}
}

func (f *fakeIncomes) Create(_ context.Context, in models.Income) error {
	if f.err != nil {
		return f.err
	}
	f.byID[in.ID] = in
	return nil
}

func (f *fakeIncomes) ListByUser(_ context.Context, userID string) ([]models.Income, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Income, 0, 4)
	for _, in := range f.byID {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeIncomes) GetByID(_ context.Context, userID, id string) (*models.Income, error) {
	if f.err != nil {
		return nil, f.err
	}
	in, ok := f.byID[id]
	if !ok || in.UserID != userID {
		return nil, nil
	}
	return &in, nil
}

func (f *fakeIncomes) Update(_ context.Context, in models.Income) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	stored, ok := f.byID[in.ID]
	if !ok || stored.UserID != in.UserID {
		return false, nil
	}
	f.byID[in.ID] = in
	return true, nil
}

func (f *fakeIncomes) Delete(_ context.Context, userID, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	in, ok := f.byID[id]
	if !ok || in.UserID != userID {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func TestIncomeService_Create_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input IncomeInput
	}{
		{"zero amount", IncomeInput{NameOfRevenue: "salary", Amount: 0}},
		{"negative amount", IncomeInput{NameOfRevenue: "salary", Amount: -10}},
		{"too many decimals", IncomeInput{NameOfRevenue: "salary", Amount: 10.999}},
		{"over limit", IncomeInput{NameOfRevenue: "salary", Amount: 2e11}},
		{"empty name", IncomeInput{NameOfRevenue: "   ", Amount: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeIncomes()
			svc := NewIncomeService(repo)

			_, err := svc.Create(context.Background(), "u1", tc.input)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got: %v", err)
			}
			if len(repo.byID) != 0 {
				t.Fatalf("nothing should have been stored")
			}
		})
	}
}

func TestIncomeService_CreateGetRoundTrip(t *testing.T) {
	svc := NewIncomeService(newFakeIncomes())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", IncomeInput{NameOfRevenue: "  salary  ", Amount: 100})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected server-assigned id")
	}
	if created.UserID != "u1" {
		t.Fatalf("owner not set from authenticated user: %q", created.UserID)
	}
	if created.NameOfRevenue != "salary" {
		t.Fatalf("name not trimmed: %q", created.NameOfRevenue)
	}

	got, err := svc.Get(ctx, "u1", created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.NameOfRevenue != "salary" || got.Amount != 100 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestIncomeService_OwnershipIsolation(t *testing.T) {
	svc := NewIncomeService(newFakeIncomes())
	ctx := context.Background()

	created, err := svc.Create(ctx, "userA", IncomeInput{NameOfRevenue: "salary", Amount: 250.50})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// userB sees not-found for A's record on every operation.
	if _, err := svc.Get(ctx, "userB", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get: expected ErrNotFound, got %v", err)
	}
	amount := 1.0
	if _, err := svc.Update(ctx, "userB", created.ID, IncomeUpdate{Amount: &amount}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "userB", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}

	// And B's list stays empty.
	list, err := svc.List(ctx, "userB")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list for userB, got %d records", len(list))
	}

	// The record is untouched for its owner.
	got, err := svc.Get(ctx, "userA", created.ID)
	if err != nil {
		t.Fatalf("owner Get failed: %v", err)
	}
	if got.Amount != 250.50 {
		t.Fatalf("record was modified: %+v", got)
	}
}

func TestIncomeService_Update_PartialMerge(t *testing.T) {
	svc := NewIncomeService(newFakeIncomes())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", IncomeInput{NameOfRevenue: "salary", Amount: 100})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Only the amount is supplied; the name must survive.
	amount := 150.25
	updated, err := svc.Update(ctx, "u1", created.ID, IncomeUpdate{Amount: &amount})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Amount != 150.25 {
		t.Fatalf("amount not updated: %v", updated.Amount)
	}
	if updated.NameOfRevenue != "salary" {
		t.Fatalf("unsupplied field changed: %q", updated.NameOfRevenue)
	}

	// Only the name is supplied; the amount must survive.
	name := "bonus"
	updated, err = svc.Update(ctx, "u1", created.ID, IncomeUpdate{NameOfRevenue: &name})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.NameOfRevenue != "bonus" || updated.Amount != 150.25 {
		t.Fatalf("merge wrong: %+v", updated)
	}

	// A supplied amount is revalidated.
	bad := -5.0
	if _, err := svc.Update(ctx, "u1", created.ID, IncomeUpdate{Amount: &bad}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestIncomeService_Delete(t *testing.T) {
	svc := NewIncomeService(newFakeIncomes())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", IncomeInput{NameOfRevenue: "salary", Amount: 100})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, "u1", created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, "u1", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("record still readable after delete: %v", err)
	}
	if err := svc.Delete(ctx, "u1", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
