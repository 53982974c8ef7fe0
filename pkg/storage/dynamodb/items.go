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
	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
	"github.com/google/uuid"
)

const accountItemsGSI = "account_id-index"

// CreateItem creates a new item listing, defaulting it to AVAILABLE.
func (s *Store) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if item.AccountId == "" || item.Name == "" {
		return nil, fmt.Errorf("%w: account id and name are required", storage.ErrValidation)
	}
	if _, err := s.GetAccount(ctx, item.AccountId); err != nil {
		return nil, fmt.Errorf("failed to get owning account: %w", err)
	}

	if item.Status == "" {
		item.Status = models.AVAILABLE
	}
	item.Id = uuid.New().String()
	item.RegisteredAt = time.Now()

	itemAV, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.ItemsTableName),
		Item:                itemAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create item in DynamoDB: %w", err)
	}

	return item, nil
}

// GetItem retrieves an item by its ID.
func (s *Store) GetItem(ctx context.Context, itemID string) (*models.Item, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": itemID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.ItemsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get item from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("%w: item %s", storage.ErrNotFound, itemID)
	}

	var item models.Item
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return &item, nil
}

// ListItemsByAccountID retrieves all items owned by an account.
func (s *Store) ListItemsByAccountID(ctx context.Context, accountID string) ([]models.Item, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ItemsTableName),
		IndexName:              aws.String(accountItemsGSI),
		KeyConditionExpression: aws.String("account_id = :accountID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":accountID": &types.AttributeValueMemberS{Value: accountID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query items by account ID: %w", err)
	}

	var items []models.Item
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items: %w", err)
	}

	return items, nil
}

// SetItemsStatus updates the availability of both items in one transactional
// write. Either both rows change or neither does.
func (s *Store) SetItemsStatus(ctx context.Context, itemIDs [2]string, status models.ItemStatus) error {
	statusAV, err := attributevalue.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal item status: %w", err)
	}

	transactItems := make([]types.TransactWriteItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		transactItems = append(transactItems, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(s.ItemsTableName),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: itemID}},
				UpdateExpression:    aws.String("SET #status = :status"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":status": statusAV,
				},
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: transactItems}); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return fmt.Errorf("%w: one of items %s, %s", storage.ErrNotFound, itemIDs[0], itemIDs[1])
				}
			}
		}
		return fmt.Errorf("failed to update item statuses: %w", err)
	}

	return nil
}
