package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/jackc/pgx/v5"
)

// ResolveIntent moves a PENDING intent to its terminal state inside one
// transaction. The intent row lock serializes concurrent confirmations.
func (s *Store) ResolveIntent(ctx context.Context, intentID string, outcome models.Outcome, source models.Source) (*models.Intent, bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// 1. Lock the intent row and check it is still pending.
	intent, err := scanIntent(tx.QueryRow(ctx, `SELECT `+intentColumns+` FROM intents WHERE id = $1 FOR UPDATE`, intentID))
	if err != nil {
		if isNoRows(err) {
			return nil, false, fmt.Errorf("intent %s: %w", intentID, storage.ErrIntentNotFound)
		}
		return nil, false, fmt.Errorf("failed to lock intent: %w", err)
	}
	if intent.Status.IsTerminal() {
		return intent, false, nil
	}

	now := time.Now().UTC()
	if outcome == models.OutcomeFailure {
		if err := finish(ctx, tx, intent, models.FAILED, source, now); err != nil {
			return nil, false, err
		}
		return intent, true, commit(ctx, tx)
	}

	// 2. Lock the account row and apply the balance change.
	acc, err := scanAccount(tx.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE owner_id = $1 FOR UPDATE`, intent.OwnerId))
	if err != nil {
		if isNoRows(err) {
			return nil, false, fmt.Errorf("account for owner %s: %w", intent.OwnerId, storage.ErrAccountNotFound)
		}
		return nil, false, fmt.Errorf("failed to lock account: %w", err)
	}
	if _, err := acc.Apply(intent.Kind, intent.Amount); err != nil {
		if !errors.Is(err, models.ErrInsufficientBalance) {
			return nil, false, err
		}
		if err := finish(ctx, tx, intent, models.FAILED, source, now); err != nil {
			return nil, false, err
		}
		if err := commit(ctx, tx); err != nil {
			return nil, false, err
		}
		return intent, true, fmt.Errorf("%w: %v", storage.ErrInsufficientFunds, err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE accounts SET balance = $2, version = $3, updated_at = $4 WHERE owner_id = $1`,
		acc.OwnerId, acc.Balance, acc.Version, now); err != nil {
		return nil, false, fmt.Errorf("failed to update account: %w", err)
	}

	// 3. Record the ledger entry.
	entry := models.NewLedgerEntry(intent)
	entry.Timestamp = now
	if _, err := tx.Exec(ctx,
		`INSERT INTO ledger_entries (entry_id, intent_id, account_id, debit, credit, description, "timestamp")
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.EntryID, entry.IntentID, entry.AccountID, entry.Debit, entry.Credit, entry.Description, entry.Timestamp); err != nil {
		return nil, false, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	// 4. Flip the status.
	if err := finish(ctx, tx, intent, models.PAID, source, now); err != nil {
		return nil, false, err
	}
	return intent, true, commit(ctx, tx)
}

func finish(ctx context.Context, tx pgx.Tx, intent *models.Intent, status models.IntentStatus, source models.Source, now time.Time) error {
	if _, err := tx.Exec(ctx,
		`UPDATE intents SET status = $2, resolved_by = $3, resolved_at = $4, updated_at = $4 WHERE id = $1`,
		intent.Id, status, source, now); err != nil {
		return fmt.Errorf("failed to update intent status to %s: %w", status, err)
	}
	intent.Status = status
	intent.ResolvedBy = source
	intent.ResolvedAt = &now
	intent.UpdatedAt = now
	return nil
}

func commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListLedgerEntries returns the most recent ledger entries.
func (s *Store) ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT entry_id, intent_id, account_id, debit, credit, description, "timestamp"
		 FROM ledger_entries ORDER BY "timestamp" DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query for ledger entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerEntry, error) {
		var e models.LedgerEntry
		err := row.Scan(&e.EntryID, &e.IntentID, &e.AccountID, &e.Debit, &e.Credit, &e.Description, &e.Timestamp)
		e.GSI1PK = models.LedgerPartition
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}
	return entries, nil
}
