package dynamodb

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/chris/intent-reconciliation/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cancelled(codes ...string) *types.TransactionCanceledException {
	reasons := make([]types.CancellationReason, len(codes))
	for i, code := range codes {
		reasons[i] = types.CancellationReason{Code: aws.String(code)}
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestResolveIntent(t *testing.T) {
	pending := models.Intent{Id: "intent-1", OwnerId: "courier-1", Amount: 200, Kind: models.CashCollection, Status: models.PENDING, Action: models.ActionNone}
	newStore := func() (*Store, *mocks.DynamoDBAPI) {
		mockClient := new(mocks.DynamoDBAPI)
		return &Store{Client: mockClient, IntentsTableName: "intents", AccountsTableName: "accounts", LedgerTableName: "ledger"}, mockClient
	}
	withStatus := func(status models.IntentStatus) map[string]types.AttributeValue {
		intent := pending
		intent.Status = status
		av, err := attributevalue.MarshalMap(intent)
		require.NoError(t, err)
		return av
	}

	t.Run("Success", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: withStatus(models.PENDING)}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			if len(in.TransactItems) != 3 {
				return false
			}
			account := in.TransactItems[opAccount].Update
			ledger := in.TransactItems[opLedger].Put
			return strings.Contains(*account.ConditionExpression, "balance >= :amount") &&
				*ledger.TableName == "ledger" &&
				*in.TransactItems[opIntent].Update.ConditionExpression == "#status = :pending"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		intent, applied, err := store.ResolveIntent(context.Background(), "intent-1", models.OutcomeSuccess, models.SourceAdmin)

		assert.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, models.PAID, intent.Status)
		assert.Equal(t, models.SourceAdmin, intent.ResolvedBy)
		assert.NotNil(t, intent.ResolvedAt)
		mockClient.AssertExpectations(t)
	})

	t.Run("Checkout Credits", func(t *testing.T) {
		store, mockClient := newStore()

		checkout := pending
		checkout.Kind = models.GatewayCheckout
		checkoutAV, _ := attributevalue.MarshalMap(checkout)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: checkoutAV}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			return strings.Contains(*in.TransactItems[opAccount].Update.UpdateExpression, "balance = balance + :amount")
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		intent, applied, err := store.ResolveIntent(context.Background(), "intent-1", models.OutcomeSuccess, models.SourceGateway)

		assert.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, models.PAID, intent.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Terminal", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: withStatus(models.PAID)}, nil).Once()

		intent, applied, err := store.ResolveIntent(context.Background(), "intent-1", models.OutcomeFailure, models.SourceAdmin)

		assert.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, models.PAID, intent.Status)
		mockClient.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Failure Outcome", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: withStatus(models.PENDING)}, nil).Once()
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		intent, applied, err := store.ResolveIntent(context.Background(), "intent-1", models.OutcomeFailure, models.SourceGateway)

		assert.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, models.FAILED, intent.Status)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Lost Race", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: withStatus(models.PENDING)}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled(conditionalCheckFailed, "None", "None")).Once()
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: withStatus(models.PAID)}, nil).Once()

		intent, applied, err := store.ResolveIntent(context.Background(), "intent-1", models.OutcomeSuccess, models.SourceAdmin)

		assert.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, models.PAID, intent.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: withStatus(models.PENDING)}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled("None", conditionalCheckFailed, "None")).Once()
		accountAV, _ := attributevalue.MarshalMap(models.Account{OwnerId: "courier-1", Balance: 50})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil).Once()
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		intent, applied, err := store.ResolveIntent(context.Background(), "intent-1", models.OutcomeSuccess, models.SourceAdmin)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		assert.True(t, applied)
		assert.Equal(t, models.FAILED, intent.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Account Missing", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: withStatus(models.PENDING)}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled("None", conditionalCheckFailed, "None")).Once()
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

		_, applied, err := store.ResolveIntent(context.Background(), "intent-1", models.OutcomeSuccess, models.SourceAdmin)

		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
		assert.False(t, applied)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: withStatus(models.PENDING)}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed")).Once()

		_, applied, err := store.ResolveIntent(context.Background(), "intent-1", models.OutcomeSuccess, models.SourceAdmin)

		assert.Error(t, err)
		assert.False(t, applied)
		assert.Contains(t, err.Error(), "failed to execute resolution transaction")
		mockClient.AssertExpectations(t)
	})

	t.Run("Intent Not Found", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

		_, _, err := store.ResolveIntent(context.Background(), "intent-1", models.OutcomeSuccess, models.SourceAdmin)

		assert.ErrorIs(t, err, storage.ErrIntentNotFound)
	})
}
