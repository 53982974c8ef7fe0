package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chris/barter-exchange/pkg/storage"
)

// Error is the structured failure payload returned by every endpoint.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// WriteError maps a storage error onto the HTTP status and error kind the
// client sees. Anything outside the known taxonomy is a 500.
func WriteError(w http.ResponseWriter, err error) {
	var (
		status int
		kind   string
	)
	switch {
	case errors.Is(err, storage.ErrValidation):
		status, kind = http.StatusBadRequest, "validation"
	case errors.Is(err, storage.ErrNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, storage.ErrConflict):
		status, kind = http.StatusConflict, "conflict"
	default:
		status, kind = http.StatusInternalServerError, "internal"
	}
	WriteJSON(w, status, Error{Kind: kind, Message: err.Error()})
}
