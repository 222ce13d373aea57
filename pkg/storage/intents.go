package storage

import (
	"context"
	"time"

	"github.com/chris/intent-reconciliation/pkg/models"
)

// IntentReader defines the interface for reading intents.
type IntentReader interface {
	// GetIntent retrieves an intent by its ID.
	GetIntent(ctx context.Context, intentID string) (*models.Intent, error)

	// GetIntentByReference retrieves an intent by the reference issued by the gateway.
	GetIntentByReference(ctx context.Context, reference string) (*models.Intent, error)

	// ListIntentsByOwner retrieves all intents of one account owner, newest first.
	ListIntentsByOwner(ctx context.Context, ownerID string) ([]models.Intent, error)

	// GetStalePendingIntents retrieves PENDING intents created more than maxAge ago.
	GetStalePendingIntents(ctx context.Context, maxAge time.Duration) ([]models.Intent, error)
}

// IntentManager defines the interface for creating intents and recording gateway handoff.
type IntentManager interface {
	// CreateIntent persists a new PENDING intent.
	CreateIntent(ctx context.Context, intent *models.Intent) (*models.Intent, error)

	// AttachGatewayReference records the gateway reference and hosted checkout URL
	// on a PENDING intent that has none yet.
	AttachGatewayReference(ctx context.Context, intentID, reference, authorizationURL string) (*models.Intent, error)
}

// IntentStore combines the reader and manager interfaces.
type IntentStore interface {
	IntentReader
	IntentManager
}
