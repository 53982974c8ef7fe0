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
)

// UpdateExchangeStatus applies a status transition. The proposal write and
// both item writes go through a single TransactWriteItems, and the proposal
// update carries a condition on the previously read status, so a concurrent
// transition on the same exchange loses the compare-and-swap instead of
// interleaving.
func (s *Store) UpdateExchangeStatus(ctx context.Context, exchangeID string, status models.ExchangeStatus) (*models.Exchange, error) {
	ex, err := s.getExchangeRecord(ctx, exchangeID)
	if err != nil {
		return nil, err
	}

	if err := storage.ValidateTransition(ex.Status, status); err != nil {
		return nil, err
	}

	now := time.Now()
	statusAV, err := attributevalue.Marshal(status)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal status: %w", err)
	}
	priorStatusAV, err := attributevalue.Marshal(ex.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prior status: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	updateExpr := "SET #status = :status, updated_at = :now"
	if status == models.COMPLETED {
		updateExpr += ", exchanged_at = :now"
	}

	transactItems := []types.TransactWriteItem{
		{
			// Operation 1: move the exchange to its new status, guarded by
			// the status we validated against.
			Update: &types.Update{
				TableName:           aws.String(s.ExchangesTableName),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: ex.Id}},
				UpdateExpression:    aws.String(updateExpr),
				ConditionExpression: aws.String("#status = :prior_status"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":status":       statusAV,
					":prior_status": priorStatusAV,
					":now":          nowAV,
				},
			},
		},
	}

	itemStatus, syncItems := storage.ItemSyncTarget(ex.Status, status)
	if syncItems {
		itemStatusAV, err := attributevalue.Marshal(itemStatus)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal item status: %w", err)
		}
		for _, itemID := range []string{ex.SenderItemId, ex.ReceiverItemId} {
			transactItems = append(transactItems, types.TransactWriteItem{
				// Operations 2 and 3: synchronize both items in the same
				// unit of work.
				Update: &types.Update{
					TableName:           aws.String(s.ItemsTableName),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: itemID}},
					UpdateExpression:    aws.String("SET #status = :item_status"),
					ConditionExpression: aws.String("attribute_exists(id)"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":item_status": itemStatusAV,
					},
				},
			})
		}
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: transactItems})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for i, reason := range tce.CancellationReasons {
				if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
					continue
				}
				if i == 0 {
					return nil, fmt.Errorf("%w: exchange %s changed concurrently", storage.ErrConflict, ex.Id)
				}
				return nil, fmt.Errorf("%w: item referenced by exchange %s", storage.ErrNotFound, ex.Id)
			}
		}
		return nil, fmt.Errorf("failed to execute status transition: %w", err)
	}

	return s.GetExchange(ctx, exchangeID)
}
