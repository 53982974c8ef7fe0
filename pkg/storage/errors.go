package storage

import (
	"errors"
	"fmt"
)

// Base error categories. Handlers map these to HTTP statuses; everything
// else surfaces as an internal storage failure.
var (
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced exchange, item, review, or
	// account does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an operation is disallowed by the current
	// state of a record.
	ErrConflict = errors.New("conflict with current state")
)

// Named errors for the exchange lifecycle. Each chains onto a base category,
// so errors.Is matches both the specific error and its category.
var (
	// ErrUnknownStatus is returned when a target status value is not part of
	// the exchange status vocabulary.
	ErrUnknownStatus = fmt.Errorf("%w: unknown exchange status", ErrValidation)

	// ErrExchangeFinalized is returned when a transition is attempted out of
	// a terminal status (COMPLETED, REJECTED, or CANCELLED).
	ErrExchangeFinalized = fmt.Errorf("%w: exchange is in a terminal status", ErrConflict)

	// ErrInvalidTransition is returned when the transition table disallows a
	// status change from a non-terminal status.
	ErrInvalidTransition = fmt.Errorf("%w: transition not allowed", ErrConflict)

	// ErrReviewNotAllowed is returned when a review targets an exchange that
	// has not completed.
	ErrReviewNotAllowed = fmt.Errorf("%w: exchange is not completed", ErrConflict)

	// ErrNotItemOwner is returned when a proposal references an item the
	// named account does not own.
	ErrNotItemOwner = fmt.Errorf("%w: account does not own the referenced item", ErrValidation)

	// ErrSelfTrade is returned when a proposal names the same account, or the
	// same item, on both sides.
	ErrSelfTrade = fmt.Errorf("%w: both sides of the trade are the same", ErrValidation)
)
