package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

// GetIntent retrieves an intent from DynamoDB by its ID.
func (s *Store) GetIntent(ctx context.Context, intentID string) (*models.Intent, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": intentID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal intent ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.IntentsTableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get intent from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("intent %s: %w", intentID, storage.ErrIntentNotFound)
	}

	var intent models.Intent
	if err := attributevalue.UnmarshalMap(result.Item, &intent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intent: %w", err)
	}

	return &intent, nil
}

// GetIntentByReference looks an intent up through the gateway reference index.
// Index reads are eventually consistent; callers that act on the status must
// reread the intent by ID.
func (s *Store) GetIntentByReference(ctx context.Context, reference string) (*models.Intent, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.IntentsTableName),
		IndexName:              aws.String(gatewayReferenceIndex),
		KeyConditionExpression: aws.String("gateway_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: reference},
		},
		Limit: aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query intent by reference: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("intent with reference %s: %w", reference, storage.ErrIntentNotFound)
	}

	var intent models.Intent
	if err := attributevalue.UnmarshalMap(result.Items[0], &intent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intent: %w", err)
	}

	return &intent, nil
}
