package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
	"github.com/google/uuid"
)

// CreateReview attaches a review to a completed exchange.
func (s *Store) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if review.ExchangeId == "" {
		return nil, fmt.Errorf("%w: exchange id is required", storage.ErrValidation)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", storage.ErrValidation)
	}

	ex, ok := s.exchanges[review.ExchangeId]
	if !ok {
		return nil, fmt.Errorf("%w: exchange %s", storage.ErrNotFound, review.ExchangeId)
	}
	if ex.Status != models.COMPLETED {
		return nil, storage.ErrReviewNotAllowed
	}

	review.Id = uuid.New().String()
	review.CreatedAt = time.Now()

	s.reviews = append(s.reviews, *review)
	return review, nil
}

// ListReviewsByExchangeID retrieves an exchange's reviews in insertion order.
func (s *Store) ListReviewsByExchangeID(ctx context.Context, exchangeID string) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Review
	for _, review := range s.reviews {
		if review.ExchangeId == exchangeID {
			out = append(out, review)
		}
	}
	return out, nil
}
