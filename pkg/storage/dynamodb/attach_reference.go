package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

// AttachGatewayReference records the gateway handoff on a PENDING intent.
// The first writer wins; later callers get ErrReferenceConflict and should
// reread the intent to pick up the stored checkout URL.
func (s *Store) AttachGatewayReference(ctx context.Context, intentID, reference, authorizationURL string) (*models.Intent, error) {
	nowAV, err := attributevalue.Marshal(time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.IntentsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: intentID},
		},
		UpdateExpression:    aws.String("SET gateway_reference = :ref, authorization_url = :url, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending AND attribute_not_exists(gateway_reference)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref":     &types.AttributeValueMemberS{Value: reference},
			":url":     &types.AttributeValueMemberS{Value: authorizationURL},
			":pending": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":now":     nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, s.classifyAttachFailure(ctx, intentID)
		}
		return nil, fmt.Errorf("failed to attach gateway reference: %w", err)
	}

	var intent models.Intent
	if err := attributevalue.UnmarshalMap(result.Attributes, &intent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intent: %w", err)
	}

	return &intent, nil
}

// classifyAttachFailure rereads the intent to explain a failed attach condition.
func (s *Store) classifyAttachFailure(ctx context.Context, intentID string) error {
	current, err := s.GetIntent(ctx, intentID)
	if err != nil {
		return err
	}
	if current.Status != models.PENDING {
		return fmt.Errorf("intent %s is %s: %w", intentID, current.Status, storage.ErrIntentNotPending)
	}
	return fmt.Errorf("intent %s: %w", intentID, storage.ErrReferenceConflict)
}
