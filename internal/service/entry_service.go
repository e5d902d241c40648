package service

import (
	"context"
	"fmt"

	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/storage"
	"fintrack/internal/validation"
)

type EntryService struct {
	entries storage.EntryStore
	log     *logger.Logger
}

func NewEntryService(entries storage.EntryStore) *EntryService {
	return &EntryService{
		entries: entries,
		log:     logger.New("entry-service"),
	}
}

func validateEntryRequest(req *models.CreateEntryRequest) error {
	if err := validation.ValidateMonth(req.Month); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidateAmounts(req.StartingBalance, req.Salary, req.EMI, req.Expenses, req.Savings); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return nil
}

// buildEntry computes the derived fields from the authoritative formula.
// Client-supplied values for totalSaved or closingBalance never reach here.
func buildEntry(userID string, req *models.CreateEntryRequest) *models.Entry {
	return &models.Entry{
		UserID:          userID,
		Month:           req.Month,
		StartingBalance: req.StartingBalance,
		Salary:          req.Salary,
		EMI:             req.EMI,
		Expenses:        req.Expenses,
		Savings:         req.Savings,
		TotalSaved:      req.Savings,
		ClosingBalance:  req.StartingBalance + req.Salary - req.EMI - req.Expenses - req.Savings,
	}
}

func (s *EntryService) Create(ctx context.Context, userID string, req *models.CreateEntryRequest) (*models.Entry, error) {
	if err := validateEntryRequest(req); err != nil {
		return nil, err
	}

	entry, err := s.entries.CreateEntry(ctx, buildEntry(userID, req))
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.log.Debug("entry created: %s for user %s", entry.ID, userID)
	return entry, nil
}

func (s *EntryService) List(ctx context.Context, userID string) ([]*models.Entry, error) {
	entries, err := s.entries.ListEntriesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func (s *EntryService) Get(ctx context.Context, userID, entryID string) (*models.Entry, error) {
	entry, err := s.entries.GetEntryByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

// Update replaces an entry's fields and recomputes the derived values. The
// entry must belong to userID; anything else is a not-found.
func (s *EntryService) Update(ctx context.Context, userID, entryID string, req *models.CreateEntryRequest) (*models.Entry, error) {
	if err := validateEntryRequest(req); err != nil {
		return nil, err
	}

	entry := buildEntry(userID, req)
	entry.ID = entryID

	updated, err := s.entries.UpdateEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	if updated == nil {
		return nil, ErrEntryNotFound
	}

	return updated, nil
}

func (s *EntryService) Delete(ctx context.Context, userID, entryID string) error {
	deleted, err := s.entries.DeleteEntry(ctx, userID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}
