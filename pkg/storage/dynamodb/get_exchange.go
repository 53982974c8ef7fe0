package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
)

// GetExchange retrieves an exchange by its ID, hydrated with both item
// summaries, both account summaries, and its reviews.
func (s *Store) GetExchange(ctx context.Context, exchangeID string) (*models.Exchange, error) {
	ex, err := s.getExchangeRecord(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if err := s.hydrateExchange(ctx, ex); err != nil {
		return nil, err
	}
	return ex, nil
}

// getExchangeRecord fetches the bare exchange record without relations.
func (s *Store) getExchangeRecord(ctx context.Context, exchangeID string) (*models.Exchange, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": exchangeID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal exchange ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.ExchangesTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("%w: exchange %s", storage.ErrNotFound, exchangeID)
	}

	var ex models.Exchange
	if err := attributevalue.UnmarshalMap(result.Item, &ex); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exchange: %w", err)
	}

	return &ex, nil
}

// hydrateExchange attaches item and account summaries and the reviews.
// A relation that no longer resolves is left nil rather than failing the
// read; the exchange record itself remains the source of truth.
func (s *Store) hydrateExchange(ctx context.Context, ex *models.Exchange) error {
	if item, err := s.GetItem(ctx, ex.SenderItemId); err == nil {
		ex.SenderItem = item
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if item, err := s.GetItem(ctx, ex.ReceiverItemId); err == nil {
		ex.ReceiverItem = item
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if account, err := s.GetAccount(ctx, ex.SenderAccountId); err == nil {
		ex.SenderAccount = account
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if account, err := s.GetAccount(ctx, ex.ReceiverAccountId); err == nil {
		ex.ReceiverAccount = account
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	reviews, err := s.ListReviewsByExchangeID(ctx, ex.Id)
	if err != nil {
		return err
	}
	ex.Reviews = reviews
	return nil
}
