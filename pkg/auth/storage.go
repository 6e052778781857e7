package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Storage defines the persistence operations required by the service.
// Lookup methods return ErrAccountNotFound when no account matches;
// any other error is treated as an infrastructure failure and propagated.
type Storage interface {
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error)
	CreateAccount(ctx context.Context, account *Account) error
	UpdateAccount(ctx context.Context, account *Account) error
	ListAccounts(ctx context.Context) ([]*Account, error)
}

// MemoryStorage is a mutex-guarded in-memory Storage implementation for
// tests and local development. It stores copies, so callers can mutate
// returned accounts freely and persist changes via UpdateAccount.
type MemoryStorage struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]Account
	byEmail map[string]uuid.UUID
}

// NewMemoryStorage creates an empty in-memory account store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:    make(map[uuid.UUID]Account),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (m *MemoryStorage) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	account := m.byID[id]
	return &account, nil
}

func (m *MemoryStorage) GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.byID[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return &account, nil
}

func (m *MemoryStorage) CreateAccount(ctx context.Context, account *Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[account.Email]; exists {
		return ErrEmailAlreadyExists
	}
	m.byID[account.ID] = *account
	m.byEmail[account.Email] = account.ID
	return nil
}

func (m *MemoryStorage) UpdateAccount(ctx context.Context, account *Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[account.ID]
	if !ok {
		return ErrAccountNotFound
	}
	if existing.Email != account.Email {
		delete(m.byEmail, existing.Email)
		m.byEmail[account.Email] = account.ID
	}
	m.byID[account.ID] = *account
	return nil
}

func (m *MemoryStorage) ListAccounts(ctx context.Context) ([]*Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	accounts := make([]*Account, 0, len(m.byID))
	for _, account := range m.byID {
		a := account
		accounts = append(accounts, &a)
	}
	return accounts, nil
}
