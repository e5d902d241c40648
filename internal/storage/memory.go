package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/models"
	usermodel "fintrack/internal/models/user"
)

// MemoryUserStore is an in-memory UserStore used in tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*usermodel.User // keyed by id
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[string]*usermodel.User),
	}
}

func (s *MemoryUserStore) CreateUser(ctx context.Context, req *usermodel.CreateUserRequest, passwordHash string) (*usermodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == req.Email {
			return nil, ErrDuplicateEmail
		}
	}

	now := time.Now()
	user := &usermodel.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[user.ID] = user

	created := *user
	created.PasswordHash = ""
	return &created, nil
}

func (s *MemoryUserStore) GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) GetUserByID(ctx context.Context, userID string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.users[userID]
	if !exists {
		return nil, nil
	}

	found := *u
	found.PasswordHash = ""
	return &found, nil
}

// MemoryEntryStore is an in-memory EntryStore used in tests.
type MemoryEntryStore struct {
	mu      sync.RWMutex
	entries map[string]*models.Entry // keyed by id
}

func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{
		entries: make(map[string]*models.Entry),
	}
}

func (s *MemoryEntryStore) CreateEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	created := *entry
	created.ID = uuid.New().String()
	created.CreatedAt = now
	created.UpdatedAt = now
	s.entries[created.ID] = &created

	result := created
	return &result, nil
}

func (s *MemoryEntryStore) ListEntriesByUser(ctx context.Context, userID string) ([]*models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*models.Entry, 0)
	for _, e := range s.entries {
		if e.UserID == userID {
			found := *e
			entries = append(entries, &found)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}

func (s *MemoryEntryStore) GetEntryByID(ctx context.Context, userID, entryID string) (*models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[entryID]
	if !exists || e.UserID != userID {
		return nil, nil
	}

	found := *e
	return &found, nil
}

func (s *MemoryEntryStore) UpdateEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.entries[entry.ID]
	if !exists || existing.UserID != entry.UserID {
		return nil, nil
	}

	updated := *entry
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	s.entries[updated.ID] = &updated

	result := updated
	return &result, nil
}

func (s *MemoryEntryStore) DeleteEntry(ctx context.Context, userID, entryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[entryID]
	if !exists || e.UserID != userID {
		return false, nil
	}

	delete(s.entries, entryID)
	return true, nil
}
