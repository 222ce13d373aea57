// Package bootstrap builds the dependencies shared by the binaries in cmd/.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/intent-reconciliation/pkg/config"
	"github.com/chris/intent-reconciliation/pkg/gateway/paystack"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/notify"
	"github.com/chris/intent-reconciliation/pkg/reconcile"
	"github.com/chris/intent-reconciliation/pkg/storage"
	dydbstore "github.com/chris/intent-reconciliation/pkg/storage/dynamodb"
	"github.com/chris/intent-reconciliation/pkg/storage/memory"
	pgstore "github.com/chris/intent-reconciliation/pkg/storage/postgres"
)

// SetupLogger installs a JSON slog logger as the default and returns it.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	return logger
}

// AWSConfig loads the default AWS SDK configuration.
func AWSConfig(ctx context.Context) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return cfg, nil
}

// OpenStore opens the configured storage backend. The returned func releases
// its resources.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Storage, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendDynamoDB:
		awsCfg, err := AWSConfig(ctx)
		if err != nil {
			return nil, nil, err
		}
		client := dynamodb.NewFromConfig(awsCfg)
		return dydbstore.New(client, cfg.DynamoDBIntentsTable, cfg.DynamoDBAccountsTable, cfg.DynamoDBLedgerTable), func() {}, nil
	case config.BackendPostgres:
		pool, err := pgstore.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store := pgstore.New(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	case config.BackendMemory:
		slog.Warn("Using in-memory storage; data is lost on restart")
		return memory.New(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// Notifier builds the delivery sink for resolved intents: the SQS queue when
// one is configured, otherwise the push relay directly. extra sinks, such as
// the websocket hub, are always included.
func Notifier(ctx context.Context, cfg *config.Config, converter *money.Converter, extra ...notify.Notifier) (notify.Notifier, error) {
	sinks := notify.Multi(extra)
	switch {
	case cfg.SQSQueueURL != "":
		awsCfg, err := AWSConfig(ctx)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, notify.NewSQSNotifier(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL))
	case cfg.PushRelayURL != "":
		sinks = append(sinks, notify.NewPushRelay(cfg.PushRelayURL, converter))
	}
	if len(sinks) == 0 {
		return notify.NoOp{}, nil
	}
	return sinks, nil
}

// Engine wires the reconciliation engine against store and the Paystack adapter.
func Engine(cfg *config.Config, store storage.Storage, notifier notify.Notifier) (*reconcile.Engine, *paystack.Client) {
	gw := paystack.New(cfg.PaystackSecretKey, cfg.PaystackBaseURL)
	engine := reconcile.New(store, gw, notifier,
		reconcile.WithHook(models.ActionOrderPayment, reconcile.LogHook(models.ActionOrderPayment)),
		reconcile.WithHook(models.ActionWalletTopUp, reconcile.LogHook(models.ActionWalletTopUp)),
	)
	return engine, gw
}
