// Package items holds the HTTP handlers for the item registry.
package items

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/barter-exchange/pkg/api"
	"github.com/chris/barter-exchange/pkg/mapping"
	"github.com/chris/barter-exchange/pkg/storage"
)

// ItemsHandler holds the dependencies for item-related handlers.
type ItemsHandler struct {
	Store storage.ApiStore
}

// NewItemsHandler creates a new ItemsHandler.
func NewItemsHandler(store storage.ApiStore) *ItemsHandler {
	return &ItemsHandler{Store: store}
}

// CreateItem handles the logic for listing a new item. Items always start
// AVAILABLE; availability only moves through the exchange lifecycle.
func (h *ItemsHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var newItem api.NewItem
	if err := json.NewDecoder(r.Body).Decode(&newItem); err != nil {
		api.WriteError(w, fmt.Errorf("%w: invalid request body: %v", storage.ErrValidation, err))
		return
	}

	created, err := h.Store.CreateItem(r.Context(), mapping.ToDomainNewItem(&newItem))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiItem(created))
}

// GetItemById handles the logic for retrieving an item by its ID.
func (h *ItemsHandler) GetItemById(w http.ResponseWriter, r *http.Request, itemId string) {
	item, err := h.Store.GetItem(r.Context(), itemId)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiItem(item))
}

// ListItemsByAccountId handles the logic for listing an account's items.
func (h *ItemsHandler) ListItemsByAccountId(w http.ResponseWriter, r *http.Request, accountId string) {
	items, err := h.Store.ListItemsByAccountID(r.Context(), accountId)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	out := make([]api.Item, 0, len(items))
	for i := range items {
		out = append(out, *mapping.ToApiItem(&items[i]))
	}

	api.WriteJSON(w, http.StatusOK, out)
}
