package storage

import (
	"context"
	"errors"

	"fintrack/internal/models"
	usermodel "fintrack/internal/models/user"
)

// ErrDuplicateEmail is returned by CreateUser when the email unique index
// rejects the insert. Closes the check-then-insert race under concurrency.
var ErrDuplicateEmail = errors.New("email already registered")

// UserStore persists user records. Lookups return (nil, nil) when no record
// exists; errors are reserved for storage failures.
type UserStore interface {
	CreateUser(ctx context.Context, req *usermodel.CreateUserRequest, passwordHash string) (*usermodel.User, error)
	GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error)
	GetUserByID(ctx context.Context, userID string) (*usermodel.User, error)
}

// EntryStore persists financial entries. Every read and write is scoped by
// the owning user id; there is no lookup by entry id alone.
type EntryStore interface {
	CreateEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	ListEntriesByUser(ctx context.Context, userID string) ([]*models.Entry, error)
	GetEntryByID(ctx context.Context, userID, entryID string) (*models.Entry, error)
	UpdateEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) (bool, error)
}
