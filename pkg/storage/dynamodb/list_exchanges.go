package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
)

const (
	senderAccountGSI   = "sender_account_id-index"
	receiverAccountGSI = "receiver_account_id-index"
	staleExchangeGSI   = "status-created_at-index"
)

// ListExchangesByAccountID retrieves every exchange the account participates
// in, as sender or receiver, hydrated and ordered by completion time
// descending with open proposals last.
func (s *Store) ListExchangesByAccountID(ctx context.Context, accountID string) ([]models.Exchange, error) {
	sent, err := s.queryExchangesByAccount(ctx, senderAccountGSI, "sender_account_id", accountID)
	if err != nil {
		return nil, err
	}
	received, err := s.queryExchangesByAccount(ctx, receiverAccountGSI, "receiver_account_id", accountID)
	if err != nil {
		return nil, err
	}

	// No proposal names the same account on both sides, so the two result
	// sets never overlap.
	exchanges := append(sent, received...)
	for i := range exchanges {
		if err := s.hydrateExchange(ctx, &exchanges[i]); err != nil {
			return nil, err
		}
	}

	storage.SortExchanges(exchanges)
	return exchanges, nil
}

func (s *Store) queryExchangesByAccount(ctx context.Context, index, keyAttr, accountID string) ([]models.Exchange, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ExchangesTableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(fmt.Sprintf("%s = :accountID", keyAttr)),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":accountID": &types.AttributeValueMemberS{Value: accountID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges by %s: %w", keyAttr, err)
	}

	var exchanges []models.Exchange
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &exchanges); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exchanges: %w", err)
	}

	return exchanges, nil
}

// GetStaleExchanges retrieves exchanges that have sat in PENDING for longer
// than the specified duration.
func (s *Store) GetStaleExchanges(ctx context.Context, maxAge time.Duration) ([]models.Exchange, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ExchangesTableName),
		IndexName:              aws.String(staleExchangeGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stale exchanges: %w", err)
	}

	var exchanges []models.Exchange
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &exchanges); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stale exchanges: %w", err)
	}

	return exchanges, nil
}
