package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
	"github.com/google/uuid"
)

// CreateItem stores a new item listing, defaulting it to AVAILABLE.
func (s *Store) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.AccountId == "" || item.Name == "" {
		return nil, fmt.Errorf("%w: account id and name are required", storage.ErrValidation)
	}
	if _, ok := s.accounts[item.AccountId]; !ok {
		return nil, fmt.Errorf("%w: account %s", storage.ErrNotFound, item.AccountId)
	}

	if item.Status == "" {
		item.Status = models.AVAILABLE
	}
	item.Id = uuid.New().String()
	item.RegisteredAt = time.Now()

	s.items[item.Id] = *item
	return item, nil
}

// GetItem retrieves an item by its ID.
func (s *Store) GetItem(ctx context.Context, itemID string) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: item %s", storage.ErrNotFound, itemID)
	}
	return &item, nil
}

// ListItemsByAccountID retrieves an account's items, ordered by name.
func (s *Store) ListItemsByAccountID(ctx context.Context, accountID string) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Item
	for _, item := range s.items {
		if item.AccountId == accountID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// SetItemsStatus updates the availability of both items, or neither.
func (s *Store) SetItemsStatus(ctx context.Context, itemIDs [2]string, status models.ItemStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, itemID := range itemIDs {
		if _, ok := s.items[itemID]; !ok {
			return fmt.Errorf("%w: item %s", storage.ErrNotFound, itemID)
		}
	}
	for _, itemID := range itemIDs {
		item := s.items[itemID]
		item.Status = status
		s.items[itemID] = item
	}
	return nil
}
