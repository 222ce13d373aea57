package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

// ResolveIntent moves a PENDING intent to its terminal state while holding the
// intent lock, so a concurrent duplicate always observes the first result.
func (s *Store) ResolveIntent(_ context.Context, intentID string, outcome models.Outcome, source models.Source) (*models.Intent, bool, error) {
	l, err := s.lockIntent(intentID)
	if err != nil {
		return nil, false, err
	}
	defer l.Unlock()

	intent, err := s.intent(intentID)
	if err != nil {
		return nil, false, err
	}
	if intent.Status.IsTerminal() {
		return intent, false, nil
	}

	now := time.Now().UTC()
	if outcome == models.OutcomeFailure {
		s.finish(intent, models.FAILED, source, now)
		return intent, true, nil
	}

	al, err := s.lockAccount(intent.OwnerId)
	if err != nil {
		return nil, false, err
	}
	defer al.Unlock()

	acc, err := s.account(intent.OwnerId)
	if err != nil {
		return nil, false, err
	}
	if _, err := acc.Apply(intent.Kind, intent.Amount); err != nil {
		if errors.Is(err, models.ErrInsufficientBalance) {
			s.finish(intent, models.FAILED, source, now)
			return intent, true, fmt.Errorf("%w: %v", storage.ErrInsufficientFunds, err)
		}
		return nil, false, err
	}
	acc.UpdatedAt = now

	entry := models.NewLedgerEntry(intent)
	entry.Timestamp = now

	s.putAccount(acc)
	s.mu.Lock()
	s.ledger = append(s.ledger, entry)
	s.mu.Unlock()
	s.finish(intent, models.PAID, source, now)
	return intent, true, nil
}

func (s *Store) finish(intent *models.Intent, status models.IntentStatus, source models.Source, now time.Time) {
	intent.Status = status
	intent.ResolvedBy = source
	intent.ResolvedAt = &now
	intent.UpdatedAt = now
	s.putIntent(intent)
}

// ListLedgerEntries returns up to limit entries, most recent first.
func (s *Store) ListLedgerEntries(_ context.Context, limit int32) ([]models.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.ledger)
	if limit > 0 && int(limit) < n {
		n = int(limit)
	}
	entries := make([]models.LedgerEntry, 0, n)
	for i := len(s.ledger) - 1; i >= 0 && len(entries) < n; i-- {
		entries = append(entries, s.ledger[i])
	}
	return entries, nil
}
