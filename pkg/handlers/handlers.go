// Package handlers assembles the HTTP router from the per-resource handler
// packages.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chris/barter-exchange/pkg/handlers/accounts"
	"github.com/chris/barter-exchange/pkg/handlers/exchanges"
	"github.com/chris/barter-exchange/pkg/handlers/items"
	"github.com/chris/barter-exchange/pkg/handlers/reviews"
	custommiddleware "github.com/chris/barter-exchange/pkg/middleware"
	"github.com/chris/barter-exchange/pkg/notify"
	"github.com/chris/barter-exchange/pkg/storage"
)

// NewRouter wires every endpoint of the exchange API onto a chi router.
func NewRouter(store storage.ApiStore, notifier notify.Notifier, logger *slog.Logger) chi.Router {
	exchangesHandler := exchanges.NewExchangesHandler(store, notifier)
	reviewsHandler := reviews.NewReviewsHandler(store)
	itemsHandler := items.NewItemsHandler(store)
	accountsHandler := accounts.NewAccountsHandler(store)

	r := chi.NewRouter()
	r.Use(custommiddleware.NewStructuredLogger(logger))

	r.Route("/exchanges", func(r chi.Router) {
		r.Post("/", exchangesHandler.CreateExchange)
		r.Get("/{exchangeId}", func(w http.ResponseWriter, req *http.Request) {
			exchangesHandler.GetExchangeById(w, req, chi.URLParam(req, "exchangeId"))
		})
		r.Patch("/{exchangeId}/status", func(w http.ResponseWriter, req *http.Request) {
			exchangesHandler.UpdateExchangeStatusById(w, req, chi.URLParam(req, "exchangeId"))
		})
		r.Delete("/{exchangeId}", func(w http.ResponseWriter, req *http.Request) {
			exchangesHandler.DeleteExchangeById(w, req, chi.URLParam(req, "exchangeId"))
		})
		r.Post("/{exchangeId}/review", func(w http.ResponseWriter, req *http.Request) {
			reviewsHandler.CreateExchangeReview(w, req, chi.URLParam(req, "exchangeId"))
		})
		r.Get("/{exchangeId}/reviews", func(w http.ResponseWriter, req *http.Request) {
			reviewsHandler.ListReviewsByExchangeId(w, req, chi.URLParam(req, "exchangeId"))
		})
	})

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", accountsHandler.CreateAccount)
		r.Get("/{accountId}", func(w http.ResponseWriter, req *http.Request) {
			accountsHandler.GetAccountById(w, req, chi.URLParam(req, "accountId"))
		})
		r.Get("/{accountId}/exchanges", func(w http.ResponseWriter, req *http.Request) {
			exchangesHandler.ListExchangesByAccountId(w, req, chi.URLParam(req, "accountId"))
		})
		r.Get("/{accountId}/items", func(w http.ResponseWriter, req *http.Request) {
			itemsHandler.ListItemsByAccountId(w, req, chi.URLParam(req, "accountId"))
		})
	})

	r.Route("/items", func(r chi.Router) {
		r.Post("/", itemsHandler.CreateItem)
		r.Get("/{itemId}", func(w http.ResponseWriter, req *http.Request) {
			itemsHandler.GetItemById(w, req, chi.URLParam(req, "itemId"))
		})
	})

	return r
}
