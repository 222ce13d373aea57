package reconcile

import (
	"context"
	"log/slog"

	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/notify"
)

// Hook runs after an intent has been resolved by the current call.
// Hook errors are logged; the resolution is already committed.
type Hook interface {
	OnPaid(ctx context.Context, intent *models.Intent) error
	OnFailed(ctx context.Context, intent *models.Intent) error
}

// HookFuncs adapts plain functions to Hook. Nil fields are skipped.
type HookFuncs struct {
	Paid   func(ctx context.Context, intent *models.Intent) error
	Failed func(ctx context.Context, intent *models.Intent) error
}

func (h HookFuncs) OnPaid(ctx context.Context, intent *models.Intent) error {
	if h.Paid == nil {
		return nil
	}
	return h.Paid(ctx, intent)
}

func (h HookFuncs) OnFailed(ctx context.Context, intent *models.Intent) error {
	if h.Failed == nil {
		return nil
	}
	return h.Failed(ctx, intent)
}

// LogHook records the outcome of the action in the log.
func LogHook(action models.Action) Hook {
	log := func(ctx context.Context, intent *models.Intent) error {
		slog.InfoContext(ctx, "post-resolution action", "action", action, "intent_id", intent.Id, "status", intent.Status)
		return nil
	}
	return HookFuncs{Paid: log, Failed: log}
}

// NotifyHook forwards both outcomes to a notifier, e.g. an order-service queue.
func NotifyHook(n notify.Notifier) Hook {
	send := func(ctx context.Context, intent *models.Intent) error {
		return n.Notify(ctx, notify.New(intent))
	}
	return HookFuncs{Paid: send, Failed: send}
}
