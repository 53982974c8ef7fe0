package storage

import (
	"context"

	"github.com/chris/barter-exchange/pkg/models"
)

// AccountStore defines the interface for account records.
type AccountStore interface {
	// GetAccount retrieves an account by its ID.
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	// CreateAccount creates a new account record.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)
}
