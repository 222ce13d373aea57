package main

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/intent-reconciliation/pkg/bootstrap"
	"github.com/chris/intent-reconciliation/pkg/config"
	"github.com/chris/intent-reconciliation/pkg/reconcile"
)

var (
	engine *reconcile.Engine
	cfg    *config.Config
)

func init() {
	logger := bootstrap.SetupLogger()

	var err error
	cfg, err = config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		panic(err)
	}
	converter, err := cfg.Converter()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	// Connections are reused across warm invocations.
	store, _, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open storage", "error", err)
		panic(err)
	}
	notifier, err := bootstrap.Notifier(ctx, cfg, converter)
	if err != nil {
		panic(err)
	}
	engine, _ = bootstrap.Engine(cfg, store, notifier)
}

// HandleRequest is triggered by an EventBridge Schedule. It re-verifies gateway
// intents that have been Pending longer than STALE_INTENT_AGE.
func HandleRequest(ctx context.Context) (reconcile.SweepReport, error) {
	slog.InfoContext(ctx, "Starting sweep of stale gateway intents", "max_age", cfg.StaleIntentAge)

	report, err := engine.ReconcileStale(ctx, cfg.StaleIntentAge)
	// Lambda freezes the process once the handler returns.
	engine.Wait()
	if err != nil {
		slog.ErrorContext(ctx, "Sweep failed", "error", err)
		return report, err
	}

	slog.InfoContext(ctx, "Sweep finished",
		"checked", report.Checked,
		"resolved", report.Resolved,
		"skipped", report.Skipped,
		"errors", report.Errors,
	)
	return report, nil
}

func main() {
	lambda.Start(HandleRequest)
}
