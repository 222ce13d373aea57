package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/google/uuid"
)

// CreateIntent persists a new PENDING intent. The write is conditional on the ID
// being unused, so a retried create can never overwrite a resolved intent.
func (s *Store) CreateIntent(ctx context.Context, intent *models.Intent) (*models.Intent, error) {
	// 1. Complete the intent with server-side details.
	now := time.Now().UTC()
	if intent.Id == "" {
		intent.Id = uuid.New().String()
	}
	if intent.Action == "" {
		intent.Action = models.ActionNone
	}
	intent.Status = models.PENDING
	intent.CreatedAt = now
	intent.UpdatedAt = now

	slog.Log(ctx, slog.LevelDebug, "creating intent", "intent", intent)

	intentAV, err := attributevalue.MarshalMap(intent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal intent: %w", err)
	}

	// 2. Write the record only if the ID is new.
	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.IntentsTableName),
		Item:                intentAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("intent %s: %w", intent.Id, storage.ErrIntentExists)
		}
		return nil, fmt.Errorf("failed to create intent in DynamoDB: %w", err)
	}

	return intent, nil
}
