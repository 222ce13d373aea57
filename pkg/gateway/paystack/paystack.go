// Package paystack is the gateway.Adapter for Paystack hosted checkout.
package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/chris/intent-reconciliation/pkg/gateway"
	"github.com/google/uuid"
)

// DefaultBaseURL is the public Paystack API.
const DefaultBaseURL = "https://api.paystack.co"

// SignatureHeader carries the HMAC-SHA512 of a webhook body.
const SignatureHeader = "x-paystack-signature"

// Client talks to the Paystack transaction API.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	newBackOff func() backoff.BackOff
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithBackOff replaces the retry policy used for verification.
func WithBackOff(f func() backoff.BackOff) Option {
	return func(cl *Client) { cl.newBackOff = f }
}

// New creates a Client. An empty baseURL selects DefaultBaseURL.
func New(secretKey, baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		secretKey:  secretKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Make sure we conform to the interfaces
var (
	_ gateway.Adapter       = (*Client)(nil)
	_ gateway.WebhookParser = (*Client)(nil)
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeBody struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// Initialize opens a hosted transaction. Amounts are sent in minor units.
// A reference is generated when the request carries none.
func (c *Client) Initialize(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResult, error) {
	reference := req.Reference
	if reference == "" {
		reference = NewReference()
	}

	body, err := json.Marshal(initializeBody{
		Email:       req.PayerEmail,
		Amount:      req.Amount,
		Reference:   reference,
		CallbackURL: req.CallbackURL,
		Metadata:    map[string]string{"intent_id": req.IntentID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	env, err := c.do(ctx, http.MethodPost, "/transaction/initialize", body)
	if err != nil {
		return nil, err
	}

	var data initializeData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode initialize response: %v", gateway.ErrUnavailable, err)
	}
	if data.AuthorizationURL == "" {
		return nil, fmt.Errorf("%w: initialize response has no authorization url", gateway.ErrUnavailable)
	}
	if data.Reference == "" {
		data.Reference = reference
	}

	return &gateway.InitializeResult{RedirectURL: data.AuthorizationURL, Reference: data.Reference}, nil
}

// Verify asks Paystack for the state of a transaction. Transport failures and
// 5xx answers are retried with exponential backoff.
func (c *Client) Verify(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
	var env *envelope
	op := func() error {
		var err error
		env, err = c.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil)
		return err
	}
	notify := func(err error, next time.Duration) {
		slog.WarnContext(ctx, "retrying paystack verify", "reference", reference, "error", err, "next", next)
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(c.newBackOff(), ctx), notify); err != nil {
		return nil, err
	}

	var data verifyData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode verify response: %v", gateway.ErrUnavailable, err)
	}

	return &gateway.VerifyResult{
		Status:    mapStatus(data.Status),
		Reference: data.Reference,
		Amount:    data.Amount,
		Raw:       env.Data,
	}, nil
}

func mapStatus(s string) gateway.Status {
	switch s {
	case "success":
		return gateway.StatusSuccess
	case "failed", "abandoned", "reversed":
		return gateway.StatusFailed
	default:
		return gateway.StatusPending
	}
}

// do sends one request. Errors are wrapped in gateway.ErrUnavailable; 4xx
// answers are marked permanent so they are not retried.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build paystack request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: paystack returned %d", gateway.ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, backoff.Permanent(fmt.Errorf("%w: paystack returned %d: %s", gateway.ErrUnavailable, resp.StatusCode, env.Message))
	case decodeErr != nil:
		return nil, backoff.Permanent(fmt.Errorf("%w: failed to decode paystack response: %v", gateway.ErrUnavailable, decodeErr))
	case !env.Status:
		return nil, backoff.Permanent(fmt.Errorf("%w: %s", gateway.ErrUnavailable, env.Message))
	}
	return &env, nil
}

// NewReference generates a transaction reference.
func NewReference() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

type webhookBody struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
	} `json:"data"`
}

// VerifySignature reports whether signature is the hex HMAC-SHA512 of body under the secret key.
func (c *Client) VerifySignature(body []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil || len(got) == 0 {
		return false
	}
	mac := hmac.New(sha512.New, []byte(c.secretKey))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// Sign returns the signature Paystack would send for body.
func (c *Client) Sign(body []byte) string {
	mac := hmac.New(sha512.New, []byte(c.secretKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseWebhook checks the signature before decoding anything.
func (c *Client) ParseWebhook(body []byte, signature string) (*gateway.WebhookEvent, error) {
	if !c.VerifySignature(body, signature) {
		return nil, gateway.ErrInvalidSignature
	}
	var wb webhookBody
	if err := json.Unmarshal(body, &wb); err != nil {
		return nil, fmt.Errorf("failed to decode webhook: %w", err)
	}
	if wb.Data.Reference == "" {
		return nil, errors.New("webhook has no reference")
	}
	return &gateway.WebhookEvent{Type: wb.Event, Reference: wb.Data.Reference}, nil
}
