package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/money"
)

// PushMessage is the body posted to the push relay.
type PushMessage struct {
	OwnerID  string `json:"owner_id"`
	IntentID string `json:"intent_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// PushRelay posts notifications to an HTTP push relay that owns device tokens.
type PushRelay struct {
	URL        string
	Converter  *money.Converter
	HTTPClient *http.Client
}

// NewPushRelay creates a PushRelay with a short timeout.
func NewPushRelay(url string, converter *money.Converter) *PushRelay {
	return &PushRelay{
		URL:        url,
		Converter:  converter,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Make sure we conform to the interface
var _ Notifier = (*PushRelay)(nil)

// Message renders the push text shown to the owner.
func (p *PushRelay) Message(n Notification) PushMessage {
	amount := p.Converter.Format(n.Amount)
	msg := PushMessage{OwnerID: n.OwnerID, IntentID: n.IntentID}
	switch {
	case n.Status == models.FAILED:
		msg.Title = fmt.Sprintf("%s payment failed", amount)
		msg.Body = "Your payment could not be completed."
	case n.Kind == models.CashCollection:
		msg.Title = fmt.Sprintf("%s cash deposit", amount)
		msg.Body = "Your cash deposit has been recorded."
	default:
		msg.Title = fmt.Sprintf("%s payment received", amount)
		msg.Body = "Your payment has been confirmed."
	}
	return msg
}

// Notify posts the rendered message to the relay.
func (p *PushRelay) Notify(ctx context.Context, n Notification) error {
	// 1. Convert payload to JSON
	body, err := json.Marshal(p.Message(n))
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	// 2. Prepare request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// 3. Send
	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach push relay: %w", err)
	}
	defer resp.Body.Close()

	// 4. Check response
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("push relay returned error: %d", resp.StatusCode)
}
