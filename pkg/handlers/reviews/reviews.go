// Package reviews holds the HTTP handlers for exchange reviews.
package reviews

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/barter-exchange/pkg/api"
	"github.com/chris/barter-exchange/pkg/mapping"
	"github.com/chris/barter-exchange/pkg/storage"
)

// ReviewsHandler holds the dependencies for review-related handlers.
type ReviewsHandler struct {
	Store storage.ApiStore
}

// NewReviewsHandler creates a new ReviewsHandler.
func NewReviewsHandler(store storage.ApiStore) *ReviewsHandler {
	return &ReviewsHandler{Store: store}
}

// CreateExchangeReview handles the logic for reviewing a completed exchange.
func (h *ReviewsHandler) CreateExchangeReview(w http.ResponseWriter, r *http.Request, exchangeId string) {
	var newReview api.NewReview
	if err := json.NewDecoder(r.Body).Decode(&newReview); err != nil {
		api.WriteError(w, fmt.Errorf("%w: invalid request body: %v", storage.ErrValidation, err))
		return
	}
	if newReview.Rating == nil {
		api.WriteError(w, fmt.Errorf("%w: rating is required", storage.ErrValidation))
		return
	}

	created, err := h.Store.CreateReview(r.Context(), mapping.ToDomainNewReview(exchangeId, &newReview))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiReview(created))
}

// ListReviewsByExchangeId handles the logic for listing an exchange's
// reviews.
func (h *ReviewsHandler) ListReviewsByExchangeId(w http.ResponseWriter, r *http.Request, exchangeId string) {
	reviews, err := h.Store.ListReviewsByExchangeID(r.Context(), exchangeId)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	out := make([]api.Review, 0, len(reviews))
	for i := range reviews {
		out = append(out, *mapping.ToApiReview(&reviews[i]))
	}

	api.WriteJSON(w, http.StatusOK, out)
}
