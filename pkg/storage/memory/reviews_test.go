package memory_test

import (
	"context"
	"testing"

	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
	"github.com/chris/barter-exchange/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	completedExchange := func(t *testing.T, store *memory.Store) *models.Exchange {
		created, err := store.CreateExchange(ctx, seedTrade(t, store))
		require.NoError(t, err)
		completed, err := store.UpdateExchangeStatus(ctx, created.Id, models.COMPLETED)
		require.NoError(t, err)
		return completed
	}

	t.Run("Success", func(t *testing.T) {
		store := memory.New()
		ex := completedExchange(t, store)

		review, err := store.CreateReview(ctx, &models.Review{ExchangeId: ex.Id, Rating: 4, Comment: "fair deal"})

		require.NoError(t, err)
		assert.NotEmpty(t, review.Id)
		assert.False(t, review.CreatedAt.IsZero())

		reviews, err := store.ListReviewsByExchangeID(ctx, ex.Id)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, 4, reviews[0].Rating)
	})

	t.Run("Missing Exchange Id", func(t *testing.T) {
		store := memory.New()

		_, err := store.CreateReview(ctx, &models.Review{Rating: 4})

		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("Rating Out Of Bounds", func(t *testing.T) {
		store := memory.New()
		ex := completedExchange(t, store)

		for _, rating := range []int{0, 6, -1} {
			_, err := store.CreateReview(ctx, &models.Review{ExchangeId: ex.Id, Rating: rating})
			assert.ErrorIs(t, err, storage.ErrValidation, "rating %d", rating)
		}

		reviews, err := store.ListReviewsByExchangeID(ctx, ex.Id)
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("Exchange Not Completed", func(t *testing.T) {
		store := memory.New()
		created, err := store.CreateExchange(ctx, seedTrade(t, store))
		require.NoError(t, err)

		_, err = store.CreateReview(ctx, &models.Review{ExchangeId: created.Id, Rating: 5})

		assert.ErrorIs(t, err, storage.ErrReviewNotAllowed)
		assert.ErrorIs(t, err, storage.ErrConflict)
	})

	t.Run("Unknown Exchange", func(t *testing.T) {
		store := memory.New()

		_, err := store.CreateReview(ctx, &models.Review{ExchangeId: "missing", Rating: 5})

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Multiple Reviews Keep Insertion Order", func(t *testing.T) {
		store := memory.New()
		ex := completedExchange(t, store)

		for i, comment := range []string{"first", "second", "third"} {
			_, err := store.CreateReview(ctx, &models.Review{ExchangeId: ex.Id, Rating: i + 1, Comment: comment})
			require.NoError(t, err)
		}

		reviews, err := store.ListReviewsByExchangeID(ctx, ex.Id)
		require.NoError(t, err)
		require.Len(t, reviews, 3)
		assert.Equal(t, "first", reviews[0].Comment)
		assert.Equal(t, "third", reviews[2].Comment)
	})
}
