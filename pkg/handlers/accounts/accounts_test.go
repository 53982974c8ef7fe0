package accounts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris/barter-exchange/pkg/api"
	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
	"github.com/chris/barter-exchange/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		handler := NewAccountsHandler(mockStorage)

		created := &models.Account{Id: "acc-1", Name: "Alice", Email: "alice@example.com"}
		mockStorage.On("CreateAccount", mock.Anything, mock.AnythingOfType("*models.Account")).Return(created, nil)

		req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(`{"name":"Alice","email":"alice@example.com"}`))
		rr := httptest.NewRecorder()

		handler.CreateAccount(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got api.Account
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "Alice", got.Name)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Missing Name", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		handler := NewAccountsHandler(mockStorage)

		mockStorage.On("CreateAccount", mock.Anything, mock.Anything).Return(nil, storage.ErrValidation)

		req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()

		handler.CreateAccount(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetAccountById(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		handler := NewAccountsHandler(mockStorage)

		account := &models.Account{Id: "acc-1", Name: "Alice"}
		mockStorage.On("GetAccount", mock.Anything, "acc-1").Return(account, nil)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1", nil)
		rr := httptest.NewRecorder()

		handler.GetAccountById(rr, req, "acc-1")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		handler := NewAccountsHandler(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, "acc-missing").Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acc-missing", nil)
		rr := httptest.NewRecorder()

		handler.GetAccountById(rr, req, "acc-missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
