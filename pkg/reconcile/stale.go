package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/chris/intent-reconciliation/pkg/models"
)

// SweepReport summarizes one ReconcileStale run.
type SweepReport struct {
	Checked  int
	Resolved int
	Skipped  int
	Errors   int
}

// ReconcileStale re-verifies PENDING gateway intents older than maxAge.
// Intents never handed to the gateway are skipped; per-intent failures are
// logged and do not stop the sweep.
func (e *Engine) ReconcileStale(ctx context.Context, maxAge time.Duration) (SweepReport, error) {
	var report SweepReport

	intents, err := e.store.GetStalePendingIntents(ctx, maxAge)
	if err != nil {
		return report, err
	}

	for _, intent := range intents {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Checked++

		if intent.Kind != models.GatewayCheckout || intent.GatewayReference == "" {
			report.Skipped++
			continue
		}

		result, err := e.ConfirmFromGateway(ctx, intent.GatewayReference, intent.Id)
		if err != nil {
			report.Errors++
			slog.ErrorContext(ctx, "failed to reconcile stale intent", "intent_id", intent.Id, "error", err)
			continue
		}
		if result.Applied {
			report.Resolved++
		}
	}

	slog.InfoContext(ctx, "stale intent sweep finished", "checked", report.Checked, "resolved", report.Resolved, "skipped", report.Skipped, "errors", report.Errors)
	return report, nil
}
