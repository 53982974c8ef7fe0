package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/barter-exchange/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the Store uses.
// Tests substitute the mock from the mocks subpackage.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client             DynamoDBAPI
	ExchangesTableName string
	ItemsTableName     string
	ReviewsTableName   string
	AccountsTableName  string
}

// New creates a new Store.
func New(client DynamoDBAPI, exchangesTable, itemsTable, reviewsTable, accountsTable string) *Store {
	return &Store{
		Client:             client,
		ExchangesTableName: exchangesTable,
		ItemsTableName:     itemsTable,
		ReviewsTableName:   reviewsTable,
		AccountsTableName:  accountsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
