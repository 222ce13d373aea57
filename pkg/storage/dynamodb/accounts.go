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

// CreateAccount creates a new account record in DynamoDB.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	if account.Version == 0 {
		account.Version = 1
	}

	accountAV, err := attributevalue.MarshalMap(account)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Item:                accountAV,
		ConditionExpression: aws.String("attribute_not_exists(owner_id)"), // Prevent overwriting existing accounts.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("account for owner %s: %w", account.OwnerId, storage.ErrAccountExists)
		}
		return nil, fmt.Errorf("failed to create account in DynamoDB: %w", err)
	}

	return account, nil
}

// GetAccount retrieves an account from DynamoDB by its owner ID.
func (s *Store) GetAccount(ctx context.Context, ownerID string) (*models.Account, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account owner ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.AccountsTableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("account for owner %s: %w", ownerID, storage.ErrAccountNotFound)
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(result.Item, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}

// ListAccounts retrieves all accounts from DynamoDB.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.AccountsTableName),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts table: %w", err)
	}

	var accounts []models.Account
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &accounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts: %w", err)
	}

	return accounts, nil
}

// CreditAccount atomically increments an account balance.
func (s *Store) CreditAccount(ctx context.Context, ownerID string, amount int64) (*models.Account, error) {
	if amount <= 0 {
		return nil, models.ErrNonPositiveAmount
	}

	amountAV, err := attributevalue.Marshal(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amount: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Key:                 map[string]types.AttributeValue{"owner_id": &types.AttributeValueMemberS{Value: ownerID}},
		UpdateExpression:    aws.String("SET balance = balance + :amount, version = version + :inc, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(owner_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": amountAV,
			":inc":    &types.AttributeValueMemberN{Value: "1"},
			":now":    nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("account for owner %s: %w", ownerID, storage.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to credit account in DynamoDB: %w", err)
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(result.Attributes, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}
