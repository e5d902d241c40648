package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fintrack/internal/database"
	"fintrack/internal/models"
)

type EntryStorage struct {
	db *database.Manager
}

func NewEntryStorage(db *database.Manager) *EntryStorage {
	return &EntryStorage{db: db}
}

func (s *EntryStorage) CreateEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	entryID := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO entries (id, user_id, month, starting_balance, salary, emi, expenses, savings, total_saved, closing_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, user_id, month, starting_balance, salary, emi, expenses, savings, total_saved, closing_balance, created_at, updated_at
	`

	var created models.Entry
	err := s.db.Pool().QueryRow(ctx, query,
		entryID,
		entry.UserID,
		entry.Month,
		entry.StartingBalance,
		entry.Salary,
		entry.EMI,
		entry.Expenses,
		entry.Savings,
		entry.TotalSaved,
		entry.ClosingBalance,
		now,
		now,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Month,
		&created.StartingBalance,
		&created.Salary,
		&created.EMI,
		&created.Expenses,
		&created.Savings,
		&created.TotalSaved,
		&created.ClosingBalance,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &created, nil
}

func (s *EntryStorage) ListEntriesByUser(ctx context.Context, userID string) ([]*models.Entry, error) {
	query := `
		SELECT id, user_id, month, starting_balance, salary, emi, expenses, savings, total_saved, closing_balance, created_at, updated_at
		FROM entries
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.Pool().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.Entry, 0)
	for rows.Next() {
		var entry models.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Month,
			&entry.StartingBalance,
			&entry.Salary,
			&entry.EMI,
			&entry.Expenses,
			&entry.Savings,
			&entry.TotalSaved,
			&entry.ClosingBalance,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	return entries, nil
}

func (s *EntryStorage) GetEntryByID(ctx context.Context, userID, entryID string) (*models.Entry, error) {
	query := `
		SELECT id, user_id, month, starting_balance, salary, emi, expenses, savings, total_saved, closing_balance, created_at, updated_at
		FROM entries
		WHERE id = $1 AND user_id = $2
	`

	var entry models.Entry
	err := s.db.Pool().QueryRow(ctx, query, entryID, userID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Month,
		&entry.StartingBalance,
		&entry.Salary,
		&entry.EMI,
		&entry.Expenses,
		&entry.Savings,
		&entry.TotalSaved,
		&entry.ClosingBalance,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return &entry, nil
}

func (s *EntryStorage) UpdateEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	query := `
		UPDATE entries
		SET month = $1, starting_balance = $2, salary = $3, emi = $4, expenses = $5, savings = $6, total_saved = $7, closing_balance = $8, updated_at = NOW()
		WHERE id = $9 AND user_id = $10
		RETURNING id, user_id, month, starting_balance, salary, emi, expenses, savings, total_saved, closing_balance, created_at, updated_at
	`

	var updated models.Entry
	err := s.db.Pool().QueryRow(ctx, query,
		entry.Month,
		entry.StartingBalance,
		entry.Salary,
		entry.EMI,
		entry.Expenses,
		entry.Savings,
		entry.TotalSaved,
		entry.ClosingBalance,
		entry.ID,
		entry.UserID,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Month,
		&updated.StartingBalance,
		&updated.Salary,
		&updated.EMI,
		&updated.Expenses,
		&updated.Savings,
		&updated.TotalSaved,
		&updated.ClosingBalance,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &updated, nil
}

func (s *EntryStorage) DeleteEntry(ctx context.Context, userID, entryID string) (bool, error) {
	query := `DELETE FROM entries WHERE id = $1 AND user_id = $2`

	tag, err := s.db.Pool().Exec(ctx, query, entryID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
