package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
	"github.com/chris/barter-exchange/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStore(client DynamoDBAPI) *Store {
	return New(client, "exchanges", "items", "reviews", "accounts")
}

// marshalListOfMaps marshals each element of a slice into a DynamoDB item
// map; the SDK's attributevalue package has no list-of-maps marshal helper.
func marshalListOfMaps[T any](in []T) ([]map[string]types.AttributeValue, error) {
	out := make([]map[string]types.AttributeValue, 0, len(in))
	for _, v := range in {
		av, err := attributevalue.MarshalMap(v)
		if err != nil {
			return nil, err
		}
		out = append(out, av)
	}
	return out, nil
}

func exchangesTable(in *dynamodb.GetItemInput) bool {
	return in.TableName != nil && *in.TableName == "exchanges"
}

func notExchangesTable(in *dynamodb.GetItemInput) bool {
	return in.TableName != nil && *in.TableName != "exchanges"
}

// expectHydration stubs the relation lookups a hydrated read performs: item
// and account fetches miss (relations stay nil) and the review query is empty.
func expectHydration(mockClient *mocks.DynamoDBAPI) {
	mockClient.On("GetItem", mock.Anything, mock.MatchedBy(notExchangesTable)).Return(&dynamodb.GetItemOutput{}, nil)
	mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)
}

func pendingExchange() *models.Exchange {
	return &models.Exchange{
		Id:                "ex-1",
		SenderItemId:      "item-1",
		ReceiverItemId:    "item-2",
		SenderAccountId:   "acc-1",
		ReceiverAccountId: "acc-2",
		Status:            models.PENDING,
	}
}

func TestUpdateExchangeStatus(t *testing.T) {
	t.Run("Accept Reserves Both Items", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		exAV, _ := attributevalue.MarshalMap(pendingExchange())
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(exchangesTable)).Return(&dynamodb.GetItemOutput{Item: exAV}, nil)

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
		}).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)
		expectHydration(mockClient)

		_, err := store.UpdateExchangeStatus(context.Background(), "ex-1", models.ACCEPTED)

		require.NoError(t, err)
		require.NotNil(t, captured)
		// One exchange update plus both item updates, in one unit of work.
		require.Len(t, captured.TransactItems, 3)
		itemStatus := captured.TransactItems[1].Update.ExpressionAttributeValues[":item_status"]
		assert.Equal(t, string(models.RESERVED), itemStatus.(*types.AttributeValueMemberS).Value)
		mockClient.AssertExpectations(t)
	})

	t.Run("Complete Sets Completion Timestamp", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		exAV, _ := attributevalue.MarshalMap(pendingExchange())
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(exchangesTable)).Return(&dynamodb.GetItemOutput{Item: exAV}, nil)

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
		}).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)
		expectHydration(mockClient)

		_, err := store.UpdateExchangeStatus(context.Background(), "ex-1", models.COMPLETED)

		require.NoError(t, err)
		require.Len(t, captured.TransactItems, 3)
		assert.Contains(t, *captured.TransactItems[0].Update.UpdateExpression, "exchanged_at")
		itemStatus := captured.TransactItems[1].Update.ExpressionAttributeValues[":item_status"]
		assert.Equal(t, string(models.SOLD), itemStatus.(*types.AttributeValueMemberS).Value)
		mockClient.AssertExpectations(t)
	})

	t.Run("Reject From Pending Leaves Items Alone", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		exAV, _ := attributevalue.MarshalMap(pendingExchange())
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(exchangesTable)).Return(&dynamodb.GetItemOutput{Item: exAV}, nil)

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
		}).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)
		expectHydration(mockClient)

		_, err := store.UpdateExchangeStatus(context.Background(), "ex-1", models.REJECTED)

		require.NoError(t, err)
		require.Len(t, captured.TransactItems, 1)
		mockClient.AssertExpectations(t)
	})

	t.Run("Terminal Status Is Frozen", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		completed := pendingExchange()
		completed.Status = models.COMPLETED
		exAV, _ := attributevalue.MarshalMap(completed)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: exAV}, nil)

		_, err := store.UpdateExchangeStatus(context.Background(), "ex-1", models.ACCEPTED)

		assert.ErrorIs(t, err, storage.ErrExchangeFinalized)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Target Status", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		exAV, _ := attributevalue.MarshalMap(pendingExchange())
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: exAV}, nil)

		_, err := store.UpdateExchangeStatus(context.Background(), "ex-1", models.ExchangeStatus("SHIPPED"))

		assert.ErrorIs(t, err, storage.ErrUnknownStatus)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Exchange Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.UpdateExchangeStatus(context.Background(), "ex-missing", models.ACCEPTED)

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Concurrent Transition Loses The Compare And Swap", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		exAV, _ := attributevalue.MarshalMap(pendingExchange())
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: exAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
			},
		})

		_, err := store.UpdateExchangeStatus(context.Background(), "ex-1", models.ACCEPTED)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Referenced Item Vanished", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		exAV, _ := attributevalue.MarshalMap(pendingExchange())
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: exAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
			},
		})

		_, err := store.UpdateExchangeStatus(context.Background(), "ex-1", models.ACCEPTED)

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
