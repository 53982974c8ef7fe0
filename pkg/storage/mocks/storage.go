// Package mocks provides a testify mock of the storage interfaces for
// handler tests.
package mocks

import (
	"context"
	"time"

	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
	"github.com/stretchr/testify/mock"
)

// Storage is a mock implementation of the storage.Storage interface.
type Storage struct {
	mock.Mock
}

var _ storage.Storage = (*Storage)(nil)

func (m *Storage) GetExchange(ctx context.Context, exchangeID string) (*models.Exchange, error) {
	args := m.Called(ctx, exchangeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exchange), args.Error(1)
}

func (m *Storage) ListExchangesByAccountID(ctx context.Context, accountID string) ([]models.Exchange, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Exchange), args.Error(1)
}

func (m *Storage) GetStaleExchanges(ctx context.Context, maxAge time.Duration) ([]models.Exchange, error) {
	args := m.Called(ctx, maxAge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Exchange), args.Error(1)
}

func (m *Storage) CreateExchange(ctx context.Context, newEx *models.Exchange) (*models.Exchange, error) {
	args := m.Called(ctx, newEx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exchange), args.Error(1)
}

func (m *Storage) UpdateExchangeStatus(ctx context.Context, exchangeID string, status models.ExchangeStatus) (*models.Exchange, error) {
	args := m.Called(ctx, exchangeID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exchange), args.Error(1)
}

func (m *Storage) DeleteExchange(ctx context.Context, exchangeID string) error {
	args := m.Called(ctx, exchangeID)
	return args.Error(0)
}

func (m *Storage) GetItem(ctx context.Context, itemID string) (*models.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *Storage) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *Storage) ListItemsByAccountID(ctx context.Context, accountID string) ([]models.Item, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *Storage) SetItemsStatus(ctx context.Context, itemIDs [2]string, status models.ItemStatus) error {
	args := m.Called(ctx, itemIDs, status)
	return args.Error(0)
}

func (m *Storage) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *Storage) ListReviewsByExchangeID(ctx context.Context, exchangeID string) ([]models.Review, error) {
	args := m.Called(ctx, exchangeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *Storage) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *Storage) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}
