package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the Store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client            DynamoDBAPI
	IntentsTableName  string
	AccountsTableName string
	LedgerTableName   string
}

// New creates a new Store.
func New(client DynamoDBAPI, intentsTable, accountsTable, ledgerTable string) *Store {
	return &Store{
		Client:            client,
		IntentsTableName:  intentsTable,
		AccountsTableName: accountsTable,
		LedgerTableName:   ledgerTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

const (
	gatewayReferenceIndex = "gateway_reference-index"
	ownerIDIndex          = "owner_id-created_at-index"
	stalePendingIndex     = "status-created_at-index"
	ledgerIndex           = "gsi1pk-timestamp-index"

	conditionalCheckFailed = "ConditionalCheckFailed"
)
