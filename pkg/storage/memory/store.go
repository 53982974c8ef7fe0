// Package memory implements the storage interfaces with in-process maps.
// It backs local development and tests, and doubles as the embedded,
// single-client variant of the proposal store.
package memory

import (
	"sync"

	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
)

// Store implements the Storage interface in memory. A single mutex
// serializes every mutation, which makes each operation a unit of work:
// a status transition and its item updates commit together or not at all.
type Store struct {
	mu        sync.Mutex
	exchanges map[string]models.Exchange
	items     map[string]models.Item
	accounts  map[string]models.Account

	// Reviews keep insertion order, which is the listing order.
	reviews []models.Review
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		exchanges: make(map[string]models.Exchange),
		items:     make(map[string]models.Item),
		accounts:  make(map[string]models.Account),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
