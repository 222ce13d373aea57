package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/google/uuid"
)

// CollectCash records cash handed over by an owner and debits it from the
// owner's cash in hand. intentID is chosen by the client and makes double
// submits idempotent. The balance is checked here, before anything is written,
// and again under the lock when the intent is resolved.
func (e *Engine) CollectCash(ctx context.Context, intentID, ownerID string, amount int64) (*Result, error) {
	if _, err := uuid.Parse(intentID); err != nil {
		return nil, invalid("intent_id", "must be a UUID")
	}
	if ownerID == "" {
		return nil, invalid("owner_id", "is required")
	}
	if amount <= 0 {
		return nil, invalid("amount", "must be positive")
	}

	// 1. A known ID is a repeated submit.
	existing, err := e.store.GetIntent(ctx, intentID)
	switch {
	case err == nil:
		if err := sameCollection(existing, ownerID, amount); err != nil {
			return nil, err
		}
		return e.Confirm(ctx, Event{IntentID: intentID, Outcome: models.OutcomeSuccess, Source: models.SourceAdmin})
	case !errors.Is(err, storage.ErrIntentNotFound):
		return nil, err
	}

	// 2. Reject up front when the owner cannot cover the amount.
	account, err := e.store.GetAccount(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if amount > account.Balance {
		return nil, fmt.Errorf("collect %d from %s with balance %d: %w", amount, ownerID, account.Balance, storage.ErrInsufficientFunds)
	}

	// 3. Create and confirm.
	_, err = e.store.CreateIntent(ctx, &models.Intent{
		Id:      intentID,
		OwnerId: ownerID,
		Amount:  amount,
		Kind:    models.CashCollection,
		Action:  models.ActionNone,
	})
	if err != nil {
		if !errors.Is(err, storage.ErrIntentExists) {
			return nil, err
		}
		raced, getErr := e.store.GetIntent(ctx, intentID)
		if getErr != nil {
			return nil, getErr
		}
		if err := sameCollection(raced, ownerID, amount); err != nil {
			return nil, err
		}
	}

	return e.Confirm(ctx, Event{IntentID: intentID, Outcome: models.OutcomeSuccess, Source: models.SourceAdmin})
}

func sameCollection(intent *models.Intent, ownerID string, amount int64) error {
	if intent.Kind != models.CashCollection || intent.OwnerId != ownerID || intent.Amount != amount {
		return fmt.Errorf("intent %s: %w", intent.Id, ErrIntentConflict)
	}
	return nil
}
