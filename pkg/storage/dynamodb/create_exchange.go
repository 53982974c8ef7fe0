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

// CreateExchange validates ownership of both items and creates the proposal
// record, defaulting its status to PENDING.
func (s *Store) CreateExchange(ctx context.Context, newEx *models.Exchange) (*models.Exchange, error) {
	if newEx.SenderItemId == "" || newEx.ReceiverItemId == "" ||
		newEx.SenderAccountId == "" || newEx.ReceiverAccountId == "" {
		return nil, fmt.Errorf("%w: all four ids are required", storage.ErrValidation)
	}
	if newEx.SenderItemId == newEx.ReceiverItemId || newEx.SenderAccountId == newEx.ReceiverAccountId {
		return nil, storage.ErrSelfTrade
	}

	// 1. Resolve both items and verify ownership before anything is written.
	senderItem, err := s.GetItem(ctx, newEx.SenderItemId)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender's item: %w", err)
	}
	receiverItem, err := s.GetItem(ctx, newEx.ReceiverItemId)
	if err != nil {
		return nil, fmt.Errorf("failed to get receiver's item: %w", err)
	}
	if senderItem.AccountId != newEx.SenderAccountId {
		return nil, fmt.Errorf("%w: item %s", storage.ErrNotItemOwner, senderItem.Id)
	}
	if receiverItem.AccountId != newEx.ReceiverAccountId {
		return nil, fmt.Errorf("%w: item %s", storage.ErrNotItemOwner, receiverItem.Id)
	}

	senderAccount, err := s.GetAccount(ctx, newEx.SenderAccountId)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender's account: %w", err)
	}
	receiverAccount, err := s.GetAccount(ctx, newEx.ReceiverAccountId)
	if err != nil {
		return nil, fmt.Errorf("failed to get receiver's account: %w", err)
	}

	// 2. Complete the exchange object with server-side details.
	if newEx.Status == "" {
		newEx.Status = models.PENDING
	} else if _, ok := models.ParseExchangeStatus(string(newEx.Status)); !ok {
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownStatus, newEx.Status)
	}

	now := time.Now()
	newEx.Id = uuid.New().String()
	newEx.CreatedAt = now
	newEx.UpdatedAt = now

	exAV, err := attributevalue.MarshalMap(newEx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal exchange: %w", err)
	}

	// 3. Create the exchange record.
	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.ExchangesTableName),
		Item:                exAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("%w: exchange %s already exists", storage.ErrConflict, newEx.Id)
		}
		return nil, fmt.Errorf("failed to create exchange in DynamoDB: %w", err)
	}

	// 4. Attach the relations we already resolved.
	newEx.SenderItem = senderItem
	newEx.ReceiverItem = receiverItem
	newEx.SenderAccount = senderAccount
	newEx.ReceiverAccount = receiverAccount

	return newEx, nil
}
