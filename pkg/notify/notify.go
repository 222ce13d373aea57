// Package notify delivers best-effort notifications after an intent is reconciled.
package notify

import (
	"context"
	"errors"

	"github.com/chris/intent-reconciliation/pkg/models"
)

// Notification describes a committed ledger change.
type Notification struct {
	OwnerID  string              `json:"owner_id"`
	IntentID string              `json:"intent_id"`
	Amount   int64               `json:"amount"`
	Kind     models.IntentKind   `json:"kind"`
	Status   models.IntentStatus `json:"status"`
}

// New builds the notification for a resolved intent.
func New(intent *models.Intent) Notification {
	return Notification{
		OwnerID:  intent.OwnerId,
		IntentID: intent.Id,
		Amount:   intent.Amount,
		Kind:     intent.Kind,
		Status:   intent.Status,
	}
}

// Notifier is a sink invoked after the ledger commit. Errors are reported to the
// caller for logging only; they never undo the commit.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NoOp drops every notification.
type NoOp struct{}

// Notify does nothing.
func (NoOp) Notify(context.Context, Notification) error { return nil }

// Multi fans a notification out to several sinks. Every sink is called even
// when an earlier one fails.
type Multi []Notifier

// Notify calls each sink in order and joins their errors.
func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, sink := range m {
		if err := sink.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_ Notifier = NoOp{}
	_ Notifier = Multi(nil)
)
