package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
	"github.com/google/uuid"
)

// CreateExchange validates both sides of the proposal and stores it.
func (s *Store) CreateExchange(ctx context.Context, newEx *models.Exchange) (*models.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newEx.SenderItemId == "" || newEx.ReceiverItemId == "" ||
		newEx.SenderAccountId == "" || newEx.ReceiverAccountId == "" {
		return nil, fmt.Errorf("%w: all four ids are required", storage.ErrValidation)
	}
	if newEx.SenderItemId == newEx.ReceiverItemId || newEx.SenderAccountId == newEx.ReceiverAccountId {
		return nil, storage.ErrSelfTrade
	}

	senderItem, ok := s.items[newEx.SenderItemId]
	if !ok {
		return nil, fmt.Errorf("%w: item %s", storage.ErrNotFound, newEx.SenderItemId)
	}
	receiverItem, ok := s.items[newEx.ReceiverItemId]
	if !ok {
		return nil, fmt.Errorf("%w: item %s", storage.ErrNotFound, newEx.ReceiverItemId)
	}
	if senderItem.AccountId != newEx.SenderAccountId {
		return nil, fmt.Errorf("%w: item %s", storage.ErrNotItemOwner, senderItem.Id)
	}
	if receiverItem.AccountId != newEx.ReceiverAccountId {
		return nil, fmt.Errorf("%w: item %s", storage.ErrNotItemOwner, receiverItem.Id)
	}
	if _, ok := s.accounts[newEx.SenderAccountId]; !ok {
		return nil, fmt.Errorf("%w: account %s", storage.ErrNotFound, newEx.SenderAccountId)
	}
	if _, ok := s.accounts[newEx.ReceiverAccountId]; !ok {
		return nil, fmt.Errorf("%w: account %s", storage.ErrNotFound, newEx.ReceiverAccountId)
	}

	if newEx.Status == "" {
		newEx.Status = models.PENDING
	} else if _, ok := models.ParseExchangeStatus(string(newEx.Status)); !ok {
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownStatus, newEx.Status)
	}

	now := time.Now()
	newEx.Id = uuid.New().String()
	newEx.CreatedAt = now
	newEx.UpdatedAt = now

	s.exchanges[newEx.Id] = *newEx
	return s.hydrate(newEx.Id)
}

// GetExchange retrieves an exchange hydrated with its items, accounts, and reviews.
func (s *Store) GetExchange(ctx context.Context, exchangeID string) (*models.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrate(exchangeID)
}

// ListExchangesByAccountID retrieves all exchanges the account participates in,
// completed ones first (newest completion first), then open ones, ties broken
// by ID descending.
func (s *Store) ListExchangesByAccountID(ctx context.Context, accountID string) ([]models.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Exchange
	for id, ex := range s.exchanges {
		if ex.SenderAccountId != accountID && ex.ReceiverAccountId != accountID {
			continue
		}
		hydrated, err := s.hydrate(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *hydrated)
	}

	storage.SortExchanges(out)
	return out, nil
}

// UpdateExchangeStatus applies a status transition and synchronizes both
// referenced items under the same lock, so a failed transition never leaves
// one item updated and the other not.
func (s *Store) UpdateExchangeStatus(ctx context.Context, exchangeID string, status models.ExchangeStatus) (*models.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex, ok := s.exchanges[exchangeID]
	if !ok {
		return nil, fmt.Errorf("%w: exchange %s", storage.ErrNotFound, exchangeID)
	}

	if err := storage.ValidateTransition(ex.Status, status); err != nil {
		return nil, err
	}

	itemStatus, syncItems := storage.ItemSyncTarget(ex.Status, status)
	if syncItems {
		// Both items must resolve before anything is written.
		for _, itemID := range []string{ex.SenderItemId, ex.ReceiverItemId} {
			if _, ok := s.items[itemID]; !ok {
				return nil, fmt.Errorf("%w: item %s", storage.ErrNotFound, itemID)
			}
		}
	}

	now := time.Now()
	ex.Status = status
	ex.UpdatedAt = now
	if status == models.COMPLETED {
		ex.ExchangedAt = &now
	}
	s.exchanges[exchangeID] = ex

	if syncItems {
		for _, itemID := range []string{ex.SenderItemId, ex.ReceiverItemId} {
			item := s.items[itemID]
			item.Status = itemStatus
			s.items[itemID] = item
		}
	}

	return s.hydrate(exchangeID)
}

// DeleteExchange removes the exchange's reviews, then the exchange.
func (s *Store) DeleteExchange(ctx context.Context, exchangeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.exchanges[exchangeID]; !ok {
		return fmt.Errorf("%w: exchange %s", storage.ErrNotFound, exchangeID)
	}

	kept := s.reviews[:0]
	for _, review := range s.reviews {
		if review.ExchangeId != exchangeID {
			kept = append(kept, review)
		}
	}
	s.reviews = kept

	delete(s.exchanges, exchangeID)
	return nil
}

// GetStaleExchanges retrieves proposals that have sat in PENDING for longer
// than maxAge.
func (s *Store) GetStaleExchanges(ctx context.Context, maxAge time.Duration) ([]models.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	var out []models.Exchange
	for _, ex := range s.exchanges {
		if ex.Status == models.PENDING && ex.CreatedAt.Before(cutoff) {
			out = append(out, ex)
		}
	}
	return out, nil
}

// hydrate returns a copy of the exchange with its relations attached.
// Callers must hold the mutex.
func (s *Store) hydrate(exchangeID string) (*models.Exchange, error) {
	ex, ok := s.exchanges[exchangeID]
	if !ok {
		return nil, fmt.Errorf("%w: exchange %s", storage.ErrNotFound, exchangeID)
	}

	if item, ok := s.items[ex.SenderItemId]; ok {
		ex.SenderItem = &item
	}
	if item, ok := s.items[ex.ReceiverItemId]; ok {
		ex.ReceiverItem = &item
	}
	if account, ok := s.accounts[ex.SenderAccountId]; ok {
		ex.SenderAccount = &account
	}
	if account, ok := s.accounts[ex.ReceiverAccountId]; ok {
		ex.ReceiverAccount = &account
	}
	for _, review := range s.reviews {
		if review.ExchangeId == exchangeID {
			ex.Reviews = append(ex.Reviews, review)
		}
	}
	return &ex, nil
}
