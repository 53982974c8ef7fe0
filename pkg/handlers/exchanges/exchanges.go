// Package exchanges holds the HTTP handlers for the trade-proposal
// lifecycle.
package exchanges

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/barter-exchange/pkg/api"
	"github.com/chris/barter-exchange/pkg/mapping"
	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/notify"
	"github.com/chris/barter-exchange/pkg/storage"
)

// ExchangesHandler holds the dependencies for exchange-related handlers.
type ExchangesHandler struct {
	Store    storage.ApiStore
	Notifier notify.Notifier
}

// NewExchangesHandler creates a new ExchangesHandler.
func NewExchangesHandler(store storage.ApiStore, notifier notify.Notifier) *ExchangesHandler {
	return &ExchangesHandler{Store: store, Notifier: notifier}
}

// CreateExchange handles the logic for proposing a new trade.
func (h *ExchangesHandler) CreateExchange(w http.ResponseWriter, r *http.Request) {
	var newEx api.NewExchange
	if err := json.NewDecoder(r.Body).Decode(&newEx); err != nil {
		api.WriteError(w, fmt.Errorf("%w: invalid request body: %v", storage.ErrValidation, err))
		return
	}

	created, err := h.Store.CreateExchange(r.Context(), mapping.ToDomainNewExchange(&newEx))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	h.publishUpdate(r, created)

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiExchange(created))
}

// GetExchangeById handles the logic for retrieving an exchange by its ID.
func (h *ExchangesHandler) GetExchangeById(w http.ResponseWriter, r *http.Request, exchangeId string) {
	exchange, err := h.Store.GetExchange(r.Context(), exchangeId)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiExchange(exchange))
}

// ListExchangesByAccountId handles the logic for listing an account's
// exchanges, optionally narrowed by the role query parameter to the ones it
// sent or received.
func (h *ExchangesHandler) ListExchangesByAccountId(w http.ResponseWriter, r *http.Request, accountId string) {
	role := r.URL.Query().Get("role")
	if role != "" && role != "sent" && role != "received" {
		api.WriteError(w, fmt.Errorf("%w: role must be \"sent\" or \"received\", got %q", storage.ErrValidation, role))
		return
	}

	exchanges, err := h.Store.ListExchangesByAccountID(r.Context(), accountId)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	out := make([]api.Exchange, 0, len(exchanges))
	for i := range exchanges {
		ex := &exchanges[i]
		if role == "sent" && ex.SenderAccountId != accountId {
			continue
		}
		if role == "received" && ex.ReceiverAccountId != accountId {
			continue
		}
		out = append(out, *mapping.ToApiExchange(ex))
	}

	api.WriteJSON(w, http.StatusOK, out)
}

// UpdateExchangeStatusById handles the logic for a status transition. Item
// availability follows the transition inside the store.
func (h *ExchangesHandler) UpdateExchangeStatusById(w http.ResponseWriter, r *http.Request, exchangeId string) {
	var update api.UpdateExchangeStatus
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		api.WriteError(w, fmt.Errorf("%w: invalid request body: %v", storage.ErrValidation, err))
		return
	}

	updated, err := h.Store.UpdateExchangeStatus(r.Context(), exchangeId, models.ExchangeStatus(update.Status))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	h.publishUpdate(r, updated)

	api.WriteJSON(w, http.StatusOK, mapping.ToApiExchange(updated))
}

// DeleteExchangeById handles the logic for deleting an exchange and its
// reviews.
func (h *ExchangesHandler) DeleteExchangeById(w http.ResponseWriter, r *http.Request, exchangeId string) {
	if err := h.Store.DeleteExchange(r.Context(), exchangeId); err != nil {
		api.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// publishUpdate fans the event out to downstream consumers. A publish
// failure never fails the request.
func (h *ExchangesHandler) publishUpdate(r *http.Request, exchange *models.Exchange) {
	if h.Notifier == nil {
		return
	}
	msg := notify.Message{
		Type: notify.MessageTypeExchangeUpdate,
		Payload: notify.ExchangeUpdatePayload{
			ExchangeID:        exchange.Id,
			SenderAccountID:   exchange.SenderAccountId,
			ReceiverAccountID: exchange.ReceiverAccountId,
			Status:            string(exchange.Status),
		},
	}
	if err := h.Notifier.NotifyExchangeUpdate(r.Context(), msg); err != nil {
		slog.Error("Failed to publish exchange event", "exchange_id", exchange.Id, "error", err)
	}
}
