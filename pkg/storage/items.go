package storage

import (
	"context"

	"github.com/chris/barter-exchange/pkg/models"
)

// ItemStore defines the interface for the item registry. Availability is
// exposed only as the narrow SetItemsStatus capability so exchange invariants
// stay enforceable; field-level edits belong to the owner-facing flows
// outside this core.
type ItemStore interface {
	// GetItem retrieves an item by its ID.
	GetItem(ctx context.Context, itemID string) (*models.Item, error)

	// CreateItem creates a new item listing.
	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)

	// ListItemsByAccountID retrieves all items owned by an account.
	ListItemsByAccountID(ctx context.Context, accountID string) ([]models.Item, error)

	// SetItemsStatus updates the availability of both referenced items in one
	// logical step. Either both writes apply or neither does.
	SetItemsStatus(ctx context.Context, itemIDs [2]string, status models.ItemStatus) error
}
