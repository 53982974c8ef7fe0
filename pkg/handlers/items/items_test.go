package items

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

func TestCreateItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		handler := NewItemsHandler(mockStorage)

		created := &models.Item{Id: "item-1", AccountId: "acc-1", Name: "Bicycle", Status: models.AVAILABLE}
		mockStorage.On("CreateItem", mock.Anything, mock.AnythingOfType("*models.Item")).Return(created, nil)

		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"account_id":"acc-1","name":"Bicycle"}`))
		rr := httptest.NewRecorder()

		handler.CreateItem(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got api.Item
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, string(models.AVAILABLE), got.Status)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Owner", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		handler := NewItemsHandler(mockStorage)

		mockStorage.On("CreateItem", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"account_id":"acc-missing","name":"Bicycle"}`))
		rr := httptest.NewRecorder()

		handler.CreateItem(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetItemById(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		handler := NewItemsHandler(mockStorage)

		item := &models.Item{Id: "item-1", AccountId: "acc-1", Name: "Bicycle", Status: models.RESERVED}
		mockStorage.On("GetItem", mock.Anything, "item-1").Return(item, nil)

		req := httptest.NewRequest(http.MethodGet, "/items/item-1", nil)
		rr := httptest.NewRecorder()

		handler.GetItemById(rr, req, "item-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.Item
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, string(models.RESERVED), got.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		handler := NewItemsHandler(mockStorage)

		mockStorage.On("GetItem", mock.Anything, "item-missing").Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/items/item-missing", nil)
		rr := httptest.NewRecorder()

		handler.GetItemById(rr, req, "item-missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListItemsByAccountId(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		handler := NewItemsHandler(mockStorage)

		listed := []models.Item{
			{Id: "item-1", AccountId: "acc-1", Name: "Bicycle"},
			{Id: "item-2", AccountId: "acc-1", Name: "Guitar"},
		}
		mockStorage.On("ListItemsByAccountID", mock.Anything, "acc-1").Return(listed, nil)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/items", nil)
		rr := httptest.NewRecorder()

		handler.ListItemsByAccountId(rr, req, "acc-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []api.Item
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Len(t, got, 2)
	})
}
