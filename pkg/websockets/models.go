package websockets

import "github.com/chris/intent-reconciliation/pkg/models"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeIntentResolved is sent when an intent reaches PAID or FAILED.
	MessageTypeIntentResolved MessageType = "intentResolved"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// IntentResolvedPayload is the payload for an intentResolved message.
type IntentResolvedPayload struct {
	OwnerID  string              `json:"owner_id"`
	IntentID string              `json:"intent_id"`
	Kind     models.IntentKind   `json:"kind"`
	Status   models.IntentStatus `json:"status"`
	Amount   string              `json:"amount"`
}
