package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `owner_id, name, balance, version, created_at, updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	if err := row.Scan(&a.OwnerId, &a.Name, &a.Balance, &a.Version, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAccount inserts a new account.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	if account.Version == 0 {
		account.Version = 1
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		account.OwnerId, account.Name, account.Balance, account.Version, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("account for owner %s: %w", account.OwnerId, storage.ErrAccountExists)
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}
	return account, nil
}

// GetAccount retrieves an account by owner ID.
func (s *Store) GetAccount(ctx context.Context, ownerID string) (*models.Account, error) {
	acc, err := scanAccount(s.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE owner_id = $1`, ownerID))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("account for owner %s: %w", ownerID, storage.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}

// ListAccounts returns all accounts ordered by owner ID.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY owner_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		acc, err := scanAccount(row)
		if err != nil {
			return models.Account{}, err
		}
		return *acc, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return accounts, nil
}

// CreditAccount atomically increments an account balance.
func (s *Store) CreditAccount(ctx context.Context, ownerID string, amount int64) (*models.Account, error) {
	if amount <= 0 {
		return nil, models.ErrNonPositiveAmount
	}
	acc, err := scanAccount(s.pool.QueryRow(ctx,
		`UPDATE accounts SET balance = balance + $2, version = version + 1, updated_at = $3
		 WHERE owner_id = $1 RETURNING `+accountColumns,
		ownerID, amount, time.Now().UTC()))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("account for owner %s: %w", ownerID, storage.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to credit account: %w", err)
	}
	return acc, nil
}
