package service

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/storage"
)

func newEntryService() *EntryService {
	return NewEntryService(storage.NewMemoryEntryStore())
}

func entryReq() *models.CreateEntryRequest {
	return &models.CreateEntryRequest{
		Month:           "January 2026",
		StartingBalance: 1000,
		Salary:          500,
		EMI:             100,
		Expenses:        200,
		Savings:         50,
	}
}

func TestCreate_DerivedFields(t *testing.T) {
	svc := newEntryService()

	entry, err := svc.Create(context.Background(), "user-a", entryReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.ClosingBalance != 1150 {
		t.Errorf("expected closingBalance 1150, got %v", entry.ClosingBalance)
	}
	if entry.TotalSaved != 50 {
		t.Errorf("expected totalSaved 50, got %v", entry.TotalSaved)
	}
	if entry.UserID != "user-a" {
		t.Errorf("expected owner 'user-a', got %q", entry.UserID)
	}
	if entry.ID == "" {
		t.Error("expected entry id to be set")
	}
}

func TestCreate_NegativeAmount(t *testing.T) {
	svc := newEntryService()

	req := entryReq()
	req.Expenses = -1

	_, err := svc.Create(context.Background(), "user-a", req)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreate_MissingMonth(t *testing.T) {
	svc := newEntryService()

	req := entryReq()
	req.Month = ""

	_, err := svc.Create(context.Background(), "user-a", req)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestList_ScopedToOwner(t *testing.T) {
	svc := newEntryService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-a", entryReq()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, "user-a", entryReq()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, "user-b", entryReq()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entriesA, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entriesA) != 2 {
		t.Errorf("expected 2 entries for user-a, got %d", len(entriesA))
	}
	for _, e := range entriesA {
		if e.UserID != "user-a" {
			t.Errorf("user-a listing leaked entry owned by %q", e.UserID)
		}
	}

	entriesB, err := svc.List(ctx, "user-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entriesB) != 1 {
		t.Errorf("expected 1 entry for user-b, got %d", len(entriesB))
	}
}

func TestGet_CrossUser(t *testing.T) {
	svc := newEntryService()
	ctx := context.Background()

	entry, err := svc.Create(ctx, "user-a", entryReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// guessing another user's entry id must behave like a missing entry
	_, err = svc.Get(ctx, "user-b", entry.ID)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound for cross-user get, got %v", err)
	}

	got, err := svc.Get(ctx, "user-a", entry.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != entry.ID {
		t.Errorf("expected entry %q, got %q", entry.ID, got.ID)
	}
}

func TestUpdate_RecomputesDerived(t *testing.T) {
	svc := newEntryService()
	ctx := context.Background()

	entry, err := svc.Create(ctx, "user-a", entryReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := entryReq()
	req.Salary = 1000
	req.Savings = 300

	updated, err := svc.Update(ctx, "user-a", entry.ID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1000 + 1000 - 100 - 200 - 300
	if updated.ClosingBalance != 1400 {
		t.Errorf("expected closingBalance 1400, got %v", updated.ClosingBalance)
	}
	if updated.TotalSaved != 300 {
		t.Errorf("expected totalSaved 300, got %v", updated.TotalSaved)
	}
}

func TestUpdate_CrossUser(t *testing.T) {
	svc := newEntryService()
	ctx := context.Background()

	entry, err := svc.Create(ctx, "user-a", entryReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Update(ctx, "user-b", entry.ID, entryReq())
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound for cross-user update, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newEntryService()
	ctx := context.Background()

	entry, err := svc.Create(ctx, "user-a", entryReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, "user-b", entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound for cross-user delete, got %v", err)
	}

	if err := svc.Delete(ctx, "user-a", entry.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, "user-a", entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound for repeated delete, got %v", err)
	}
}
