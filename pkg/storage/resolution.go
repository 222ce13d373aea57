package storage

import (
	"context"

	"github.com/chris/intent-reconciliation/pkg/models"
)

// ResolutionStore defines the privileged interface for resolving an intent.
// The pending check, the account mutation, the ledger entry and the status flip
// commit together or not at all, under a lock scoped to the single intent.
type ResolutionStore interface {
	// ResolveIntent moves a Pending intent to its terminal state.
	// applied is false when the intent was already terminal; the recorded intent is
	// returned unchanged in that case. When a debit cannot be covered the intent is
	// marked FAILED and ErrInsufficientFunds is returned alongside it.
	ResolveIntent(ctx context.Context, intentID string, outcome models.Outcome, source models.Source) (intent *models.Intent, applied bool, err error)
}
