package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/intent-reconciliation/pkg/bootstrap"
	"github.com/chris/intent-reconciliation/pkg/config"
	"github.com/chris/intent-reconciliation/pkg/notify"
)

var relay notify.Notifier

func setup() {
	logger := bootstrap.SetupLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		panic(err)
	}
	if cfg.PushRelayURL == "" {
		logger.Error("PUSH_RELAY_URL environment variable not set")
		os.Exit(1)
	}
	converter, err := cfg.Converter()
	if err != nil {
		panic(err)
	}
	relay = notify.NewPushRelay(cfg.PushRelayURL, converter)
}

// HandleRequest delivers queued notifications to the push relay. Messages that
// fail are reported back so SQS redelivers only those.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	return deliver(ctx, relay, sqsEvent), nil
}

func deliver(ctx context.Context, sink notify.Notifier, sqsEvent events.SQSEvent) events.SQSEventResponse {
	var resp events.SQSEventResponse
	for _, message := range sqsEvent.Records {
		var n notify.Notification
		if err := json.Unmarshal([]byte(message.Body), &n); err != nil {
			// A malformed body never succeeds; drop it instead of redelivering forever.
			slog.ErrorContext(ctx, "Failed to unmarshal notification", "message_id", message.MessageId, "error", err)
			continue
		}

		if err := sink.Notify(ctx, n); err != nil {
			slog.ErrorContext(ctx, "Failed to deliver notification", "message_id", message.MessageId, "intent_id", n.IntentID, "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}

		slog.InfoContext(ctx, "Delivered notification", "message_id", message.MessageId, "intent_id", n.IntentID)
	}
	return resp
}

func main() {
	setup()
	lambda.Start(HandleRequest)
}
