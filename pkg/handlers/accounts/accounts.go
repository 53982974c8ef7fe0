// Package accounts holds the HTTP handlers for account records.
package accounts

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/barter-exchange/pkg/api"
	"github.com/chris/barter-exchange/pkg/mapping"
	"github.com/chris/barter-exchange/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.ApiStore
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.ApiStore) *AccountsHandler {
	return &AccountsHandler{Store: store}
}

// CreateAccount handles the logic for creating a new account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAccount api.NewAccount
	if err := json.NewDecoder(r.Body).Decode(&newAccount); err != nil {
		api.WriteError(w, fmt.Errorf("%w: invalid request body: %v", storage.ErrValidation, err))
		return
	}

	created, err := h.Store.CreateAccount(r.Context(), mapping.ToDomainNewAccount(&newAccount))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiAccount(created))
}

// GetAccountById handles the logic for retrieving an account by its ID.
func (h *AccountsHandler) GetAccountById(w http.ResponseWriter, r *http.Request, accountId string) {
	account, err := h.Store.GetAccount(r.Context(), accountId)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiAccount(account))
}
