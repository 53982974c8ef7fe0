package storage

import (
	"context"
	"time"

	"github.com/chris/barter-exchange/pkg/models"
)

// ExchangeReader defines the interface for reading exchange proposals.
type ExchangeReader interface {
	// GetExchange retrieves an exchange by its ID, hydrated with both item
	// summaries, both account summaries, and its reviews.
	GetExchange(ctx context.Context, exchangeID string) (*models.Exchange, error)

	// ListExchangesByAccountID retrieves all exchanges where the account is
	// the sender or the receiver, ordered by completion time descending
	// (uncompleted proposals sort last), ties broken by ID descending.
	ListExchangesByAccountID(ctx context.Context, accountID string) ([]models.Exchange, error)

	// GetStaleExchanges retrieves exchanges that have sat in PENDING for
	// longer than maxAge.
	GetStaleExchanges(ctx context.Context, maxAge time.Duration) ([]models.Exchange, error)
}

// ExchangeManager defines the interface for creating and mutating exchange
// proposals. All status changes go through UpdateExchangeStatus; there is no
// unmediated item-status path.
type ExchangeManager interface {
	// CreateExchange validates ownership and distinctness of both sides and
	// creates the proposal, defaulting its status to PENDING.
	CreateExchange(ctx context.Context, newEx *models.Exchange) (*models.Exchange, error)

	// UpdateExchangeStatus applies a status transition and, in the same unit
	// of work, synchronizes both referenced items' availability.
	UpdateExchangeStatus(ctx context.Context, exchangeID string, status models.ExchangeStatus) (*models.Exchange, error)

	// DeleteExchange deletes all reviews of the exchange, then the exchange
	// itself.
	DeleteExchange(ctx context.Context, exchangeID string) error
}

// ExchangeStore combines the reader and manager interfaces.
type ExchangeStore interface {
	ExchangeReader
	ExchangeManager
}
