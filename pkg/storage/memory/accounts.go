package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
	"github.com/google/uuid"
)

// CreateAccount stores a new account record.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if account.Name == "" {
		return nil, fmt.Errorf("%w: name is required", storage.ErrValidation)
	}

	account.Id = uuid.New().String()
	account.CreatedAt = time.Now()

	s.accounts[account.Id] = *account
	return account, nil
}

// GetAccount retrieves an account by its ID.
func (s *Store) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", storage.ErrNotFound, accountID)
	}
	return &account, nil
}
