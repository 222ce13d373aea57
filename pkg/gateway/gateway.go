// Package gateway defines the contract with third-party hosted payment processors.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrUnavailable is returned when the processor cannot be reached or rejects the call.
// The intent stays PENDING and the call may be retried.
var ErrUnavailable = errors.New("payment gateway unavailable")

// ErrInvalidSignature is returned when a webhook body does not carry a valid signature.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// Status is the gateway's view of a hosted transaction.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	// StatusPending covers every state that is not final yet; it never resolves an intent.
	StatusPending Status = "pending"
)

// InitializeRequest opens a hosted checkout for one intent.
type InitializeRequest struct {
	IntentID    string
	Reference   string
	Amount      int64
	PayerEmail  string
	CallbackURL string
}

// InitializeResult carries the redirect target returned by the processor.
type InitializeResult struct {
	RedirectURL string
	Reference   string
}

// VerifyResult is the processor's answer for a reference.
type VerifyResult struct {
	Status    Status
	Reference string
	Amount    int64
	Raw       json.RawMessage
}

// WebhookEvent is a decoded, signature-checked server-to-server notification.
type WebhookEvent struct {
	Type      string
	Reference string
}

// Adapter is implemented by each supported processor.
type Adapter interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}

// WebhookParser authenticates and decodes webhook deliveries.
type WebhookParser interface {
	ParseWebhook(body []byte, signature string) (*WebhookEvent, error)
}
