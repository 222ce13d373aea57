package storage

import (
	"context"

	"github.com/chris/intent-reconciliation/pkg/models"
)

// AccountStore defines the interface for managing ledger accounts.
type AccountStore interface {
	// GetAccount retrieves an account by its owner ID.
	GetAccount(ctx context.Context, ownerID string) (*models.Account, error)

	// CreateAccount creates a new account for an owner.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// ListAccounts retrieves all accounts from the storage.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// CreditAccount adds amount to the balance outside of any intent,
	// e.g. cash a courier received from customers on delivery.
	CreditAccount(ctx context.Context, ownerID string, amount int64) (*models.Account, error)
}
