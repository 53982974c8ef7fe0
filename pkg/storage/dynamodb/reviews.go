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
	"github.com/google/uuid"
)

const exchangeReviewsGSI = "exchange_id-index"

// CreateReview attaches a review to a completed exchange.
func (s *Store) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.ExchangeId == "" {
		return nil, fmt.Errorf("%w: exchange id is required", storage.ErrValidation)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", storage.ErrValidation)
	}

	ex, err := s.getExchangeRecord(ctx, review.ExchangeId)
	if err != nil {
		return nil, err
	}
	if ex.Status != models.COMPLETED {
		return nil, storage.ErrReviewNotAllowed
	}

	review.Id = uuid.New().String()
	review.CreatedAt = time.Now()

	reviewAV, err := attributevalue.MarshalMap(review)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal review: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.ReviewsTableName),
		Item:                reviewAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create review in DynamoDB: %w", err)
	}

	return review, nil
}

// ListReviewsByExchangeID retrieves all reviews for an exchange.
func (s *Store) ListReviewsByExchangeID(ctx context.Context, exchangeID string) ([]models.Review, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ReviewsTableName),
		IndexName:              aws.String(exchangeReviewsGSI),
		KeyConditionExpression: aws.String("exchange_id = :exchangeID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":exchangeID": &types.AttributeValueMemberS{Value: exchangeID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews by exchange ID: %w", err)
	}

	var reviews []models.Review
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &reviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews: %w", err)
	}

	return reviews, nil
}
