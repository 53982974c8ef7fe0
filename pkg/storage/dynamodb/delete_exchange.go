package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DeleteExchange removes the exchange and all of its reviews in a single
// unit of work, so a dangling review is never observable.
func (s *Store) DeleteExchange(ctx context.Context, exchangeID string) error {
	ex, err := s.getExchangeRecord(ctx, exchangeID)
	if err != nil {
		return err
	}

	reviews, err := s.ListReviewsByExchangeID(ctx, exchangeID)
	if err != nil {
		return fmt.Errorf("failed to list reviews for cascade delete: %w", err)
	}

	transactItems := make([]types.TransactWriteItem, 0, len(reviews)+1)
	for _, review := range reviews {
		transactItems = append(transactItems, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(s.ReviewsTableName),
				Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: review.Id}},
			},
		})
	}
	transactItems = append(transactItems, types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(s.ExchangesTableName),
			Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: ex.Id}},
		},
	})

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: transactItems}); err != nil {
		return fmt.Errorf("failed to execute cascade delete: %w", err)
	}

	return nil
}
