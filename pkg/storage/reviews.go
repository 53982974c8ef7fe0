package storage

import (
	"context"

	"github.com/chris/barter-exchange/pkg/models"
)

// ReviewStore defines the interface for exchange reviews. Reviews have no
// update or standalone delete: they are immutable once created and disappear
// only with the cascade delete of their parent exchange.
type ReviewStore interface {
	// CreateReview attaches a review to a completed exchange.
	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)

	// ListReviewsByExchangeID retrieves all reviews for an exchange.
	ListReviewsByExchangeID(ctx context.Context, exchangeID string) ([]models.Review, error)
}
