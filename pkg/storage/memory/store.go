// Package memory is an in-process Storage used for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

// Store keeps intents, accounts and ledger entries in maps.
// Each intent and each account has its own mutex; resolution takes the intent
// lock first and the account lock second. mu only guards the maps themselves
// and is always acquired last.
type Store struct {
	mu       sync.RWMutex
	intents  map[string]*models.Intent
	byRef    map[string]string
	accounts map[string]*models.Account
	ledger   []models.LedgerEntry
	locks    map[string]*sync.Mutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		intents:  make(map[string]*models.Intent),
		byRef:    make(map[string]string),
		accounts: make(map[string]*models.Account),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// Locks are created together with their record, so lookups of unknown keys
// never grow the lock map.
func (s *Store) lockIntent(intentID string) (*sync.Mutex, error) {
	s.mu.RLock()
	l, ok := s.locks[intentKey(intentID)]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("intent %s: %w", intentID, storage.ErrIntentNotFound)
	}
	l.Lock()
	return l, nil
}

func (s *Store) lockAccount(ownerID string) (*sync.Mutex, error) {
	s.mu.RLock()
	l, ok := s.locks[accountKey(ownerID)]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("account for owner %s: %w", ownerID, storage.ErrAccountNotFound)
	}
	l.Lock()
	return l, nil
}

func intentKey(id string) string     { return "intent:" + id }
func accountKey(owner string) string { return "account:" + owner }

// CreateAccount stores a new account.
func (s *Store) CreateAccount(_ context.Context, account *models.Account) (*models.Account, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	if account.Version == 0 {
		account.Version = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.OwnerId]; ok {
		return nil, fmt.Errorf("account for owner %s: %w", account.OwnerId, storage.ErrAccountExists)
	}
	stored := *account
	s.accounts[account.OwnerId] = &stored
	s.locks[accountKey(account.OwnerId)] = &sync.Mutex{}
	return account, nil
}

// GetAccount returns a copy of the account.
func (s *Store) GetAccount(_ context.Context, ownerID string) (*models.Account, error) {
	l, err := s.lockAccount(ownerID)
	if err != nil {
		return nil, err
	}
	defer l.Unlock()
	return s.account(ownerID)
}

// account must be called with the account lock held.
func (s *Store) account(ownerID string) (*models.Account, error) {
	s.mu.RLock()
	acc, ok := s.accounts[ownerID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("account for owner %s: %w", ownerID, storage.ErrAccountNotFound)
	}
	cp := *acc
	return &cp, nil
}

// ListAccounts returns all accounts ordered by owner ID.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	s.mu.RLock()
	owners := make([]string, 0, len(s.accounts))
	for owner := range s.accounts {
		owners = append(owners, owner)
	}
	s.mu.RUnlock()
	sort.Strings(owners)

	accounts := make([]models.Account, 0, len(owners))
	for _, owner := range owners {
		acc, err := s.GetAccount(ctx, owner)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	return accounts, nil
}

// CreditAccount adds amount to the balance.
func (s *Store) CreditAccount(_ context.Context, ownerID string, amount int64) (*models.Account, error) {
	l, err := s.lockAccount(ownerID)
	if err != nil {
		return nil, err
	}
	defer l.Unlock()

	acc, err := s.account(ownerID)
	if err != nil {
		return nil, err
	}
	if _, err := acc.Credit(amount); err != nil {
		return nil, err
	}
	acc.UpdatedAt = time.Now().UTC()
	s.putAccount(acc)
	return acc, nil
}

func (s *Store) putAccount(acc *models.Account) {
	cp := *acc
	s.mu.Lock()
	s.accounts[acc.OwnerId] = &cp
	s.mu.Unlock()
}
