package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chris/intent-reconciliation/pkg/gateway"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

// InitiateResult is the hosted checkout the payer should be sent to.
type InitiateResult struct {
	Intent      *models.Intent
	RedirectURL string
}

// Initiate opens a hosted checkout for a PENDING gateway intent.
// An intent that already has a reference gets its recorded checkout URL back
// without a second gateway call. Unknown and terminal intents yield ErrAlreadyProcessed.
func (e *Engine) Initiate(ctx context.Context, intentID, callbackURL string) (*InitiateResult, error) {
	// 1. Check the intent can still be paid.
	intent, err := e.store.GetIntent(ctx, intentID)
	if err != nil {
		if errors.Is(err, storage.ErrIntentNotFound) {
			return nil, fmt.Errorf("intent %s: %w", intentID, ErrAlreadyProcessed)
		}
		return nil, err
	}
	if intent.Status.IsTerminal() {
		return nil, fmt.Errorf("intent %s is %s: %w", intentID, intent.Status, ErrAlreadyProcessed)
	}
	if intent.Kind != models.GatewayCheckout {
		return nil, invalid("payment_id", "intent is not a gateway checkout")
	}
	if intent.GatewayReference != "" {
		return &InitiateResult{Intent: intent, RedirectURL: intent.AuthorizationURL}, nil
	}

	// 2. Open the hosted transaction. No lock is held across the network call.
	opened, err := e.gateway.Initialize(ctx, gateway.InitializeRequest{
		IntentID:    intent.Id,
		Amount:      intent.Amount,
		PayerEmail:  intent.PayerEmail,
		CallbackURL: callbackURL,
	})
	if err != nil {
		return nil, unavailable(err)
	}

	// 3. Record the reference; a concurrent initiate may have won.
	attached, err := e.store.AttachGatewayReference(ctx, intent.Id, opened.Reference, opened.RedirectURL)
	switch {
	case err == nil:
		return &InitiateResult{Intent: attached, RedirectURL: attached.AuthorizationURL}, nil
	case errors.Is(err, storage.ErrReferenceConflict):
		current, getErr := e.store.GetIntent(ctx, intent.Id)
		if getErr != nil {
			return nil, getErr
		}
		slog.InfoContext(ctx, "concurrent initiate, reusing recorded checkout", "intent_id", intent.Id, "reference", current.GatewayReference)
		return &InitiateResult{Intent: current, RedirectURL: current.AuthorizationURL}, nil
	case errors.Is(err, storage.ErrIntentNotPending):
		return nil, fmt.Errorf("intent %s: %w", intent.Id, ErrAlreadyProcessed)
	default:
		return nil, err
	}
}

// ConfirmFromGateway handles a gateway callback or webhook for reference.
// The outcome is taken from the gateway's verify answer, never from the caller.
// paymentID, when given, must name the intent that owns the reference.
func (e *Engine) ConfirmFromGateway(ctx context.Context, reference, paymentID string) (*Result, error) {
	if reference == "" {
		return nil, invalid("reference", "is required")
	}

	// 1. Find the intent before any network call.
	intent, err := e.store.GetIntentByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if paymentID != "" && paymentID != intent.Id {
		return nil, fmt.Errorf("reference %s does not belong to intent %s: %w", reference, paymentID, storage.ErrIntentNotFound)
	}
	if intent.Status.IsTerminal() {
		return &Result{Intent: intent}, nil
	}

	// 2. Ask the gateway, outside any lock.
	verified, err := e.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, unavailable(err)
	}

	var outcome models.Outcome
	switch verified.Status {
	case gateway.StatusSuccess:
		outcome = models.OutcomeSuccess
		if verified.Amount != intent.Amount {
			slog.WarnContext(ctx, "gateway amount mismatch", "intent_id", intent.Id, "expected", intent.Amount, "verified", verified.Amount)
			outcome = models.OutcomeFailure
		}
	case gateway.StatusFailed:
		outcome = models.OutcomeFailure
	default:
		slog.InfoContext(ctx, "gateway transaction not final yet", "intent_id", intent.Id, "reference", reference)
		return &Result{Intent: intent}, nil
	}

	// 3. Resolve under the per-intent lock.
	return e.Confirm(ctx, Event{IntentID: intent.Id, Outcome: outcome, Source: models.SourceGateway})
}

func unavailable(err error) error {
	if errors.Is(err, gateway.ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
}
