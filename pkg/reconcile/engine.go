// Package reconcile applies confirmations from admins and payment gateways to
// intents, exactly once per intent.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chris/intent-reconciliation/pkg/gateway"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/notify"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/google/uuid"
)

// Engine is the reconciliation engine.
type Engine struct {
	store    storage.Storage
	gateway  gateway.Adapter
	notifier notify.Notifier
	hooks    map[models.Action]Hook

	// sends tracks notifications still in flight.
	sends sync.WaitGroup
}

// notifyTimeout bounds one detached notification send.
const notifyTimeout = 10 * time.Second

// Option configures an Engine.
type Option func(*Engine)

// WithHook registers the hook run for intents created with action.
func WithHook(action models.Action, hook Hook) Option {
	return func(e *Engine) { e.hooks[action] = hook }
}

// New creates an Engine. A nil notifier drops notifications.
func New(store storage.Storage, gw gateway.Adapter, notifier notify.Notifier, opts ...Option) *Engine {
	if notifier == nil {
		notifier = notify.NoOp{}
	}
	e := &Engine{
		store:    store,
		gateway:  gw,
		notifier: notifier,
		hooks:    map[models.Action]Hook{models.ActionNone: HookFuncs{}},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Event is a confirmation delivered by an admin or a gateway.
// Gateway events are looked up by Reference when set, admin events by IntentID.
type Event struct {
	IntentID  string
	Reference string
	Outcome   models.Outcome
	Source    models.Source
}

// Result is the state of the intent after a confirmation.
// Applied is false for duplicate deliveries, which leave everything unchanged.
type Result struct {
	Intent  *models.Intent
	Applied bool
}

// NewIntent carries the caller's input for CreateIntent.
type NewIntent struct {
	ID         string
	OwnerID    string
	Amount     int64
	Kind       models.IntentKind
	PayerEmail string
	Action     models.Action
}

// CreateIntent validates and stores a PENDING intent.
func (e *Engine) CreateIntent(ctx context.Context, in NewIntent) (*models.Intent, error) {
	if in.ID != "" {
		if _, err := uuid.Parse(in.ID); err != nil {
			return nil, invalid("id", "must be a UUID")
		}
	}
	if in.OwnerID == "" {
		return nil, invalid("owner_id", "is required")
	}
	if in.Amount <= 0 {
		return nil, invalid("amount", "must be positive")
	}
	if !in.Kind.Valid() {
		return nil, invalid("kind", fmt.Sprintf("unknown kind %q", in.Kind))
	}
	if in.Kind == models.GatewayCheckout && in.PayerEmail == "" {
		return nil, invalid("payer_email", "is required for gateway checkouts")
	}
	if in.Action == "" {
		in.Action = models.ActionNone
	}
	if _, ok := e.hooks[in.Action]; !ok {
		return nil, invalid("action", fmt.Sprintf("unknown action %q", in.Action))
	}

	if _, err := e.store.GetAccount(ctx, in.OwnerID); err != nil {
		return nil, err
	}

	return e.store.CreateIntent(ctx, &models.Intent{
		Id:         in.ID,
		OwnerId:    in.OwnerID,
		Amount:     in.Amount,
		Kind:       in.Kind,
		PayerEmail: in.PayerEmail,
		Action:     in.Action,
	})
}

// Confirm resolves the intent named by ev. A confirmation for an intent that is
// already terminal is not an error: the recorded result is returned with Applied false.
func (e *Engine) Confirm(ctx context.Context, ev Event) (*Result, error) {
	if ev.Outcome != models.OutcomeSuccess && ev.Outcome != models.OutcomeFailure {
		return nil, invalid("outcome", fmt.Sprintf("unknown outcome %q", ev.Outcome))
	}

	intentID := ev.IntentID
	switch ev.Source {
	case models.SourceGateway:
		if ev.Reference != "" {
			intent, err := e.store.GetIntentByReference(ctx, ev.Reference)
			if err != nil {
				return nil, err
			}
			intentID = intent.Id
		}
	case models.SourceAdmin:
		if intentID != "" && ev.Outcome == models.OutcomeSuccess {
			if err := e.adminMayPay(ctx, intentID); err != nil {
				return nil, err
			}
		}
	default:
		return nil, invalid("source", fmt.Sprintf("unknown source %q", ev.Source))
	}
	if intentID == "" {
		return nil, invalid("intent_id", "is required")
	}

	intent, applied, err := e.store.ResolveIntent(ctx, intentID, ev.Outcome, ev.Source)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientFunds) && applied {
			e.afterResolve(ctx, intent)
			return &Result{Intent: intent, Applied: true}, err
		}
		return nil, err
	}
	if !applied {
		slog.InfoContext(ctx, "duplicate confirmation", "intent_id", intent.Id, "status", intent.Status, "source", ev.Source)
		return &Result{Intent: intent}, nil
	}

	slog.InfoContext(ctx, "intent resolved", "intent_id", intent.Id, "status", intent.Status, "source", ev.Source)
	e.afterResolve(ctx, intent)
	return &Result{Intent: intent, Applied: true}, nil
}

// adminMayPay rejects an admin success for a pending gateway checkout; only a
// verified gateway answer marks one paid. Admins may still fail it.
func (e *Engine) adminMayPay(ctx context.Context, intentID string) error {
	intent, err := e.store.GetIntent(ctx, intentID)
	if err != nil {
		return err
	}
	if intent.Kind == models.GatewayCheckout && intent.Status == models.PENDING {
		return invalid("outcome", "gateway checkouts are paid only on a verified gateway confirmation")
	}
	return nil
}

// afterResolve runs the intent's hook and, for PAID intents, sends the
// notification in the background so the caller does not wait on the sink.
// Both run after the commit; their errors are only logged.
func (e *Engine) afterResolve(ctx context.Context, intent *models.Intent) {
	if hook, ok := e.hooks[intent.Action]; ok {
		var err error
		if intent.Status == models.PAID {
			err = hook.OnPaid(ctx, intent)
		} else {
			err = hook.OnFailed(ctx, intent)
		}
		if err != nil {
			slog.ErrorContext(ctx, "post-resolution hook failed", "intent_id", intent.Id, "action", intent.Action, "error", err)
		}
	}

	if intent.Status != models.PAID {
		return
	}
	n := notify.New(intent)
	sendCtx := context.WithoutCancel(ctx)
	e.sends.Add(1)
	go func() {
		defer e.sends.Done()
		ctx, cancel := context.WithTimeout(sendCtx, notifyTimeout)
		defer cancel()
		if err := e.notifier.Notify(ctx, n); err != nil {
			slog.ErrorContext(ctx, "notification failed", "intent_id", n.IntentID, "owner_id", n.OwnerID, "error", err)
		}
	}()
}

// Wait blocks until every notification started so far has been handed to the
// notifier. Call it before the process exits or a Lambda invocation returns.
func (e *Engine) Wait() {
	e.sends.Wait()
}
