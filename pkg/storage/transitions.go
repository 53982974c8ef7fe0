package storage

import (
	"fmt"

	"github.com/chris/barter-exchange/pkg/models"
)

// ValidateTransition checks a proposed status change against the lifecycle
// table. Terminal statuses accept no further transitions, nothing moves back
// to PENDING, and ACCEPTED is reachable only from PENDING.
func ValidateTransition(from, to models.ExchangeStatus) error {
	if _, ok := models.ParseExchangeStatus(string(to)); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if from.IsTerminal() {
		return fmt.Errorf("%w: %s -> %s", ErrExchangeFinalized, from, to)
	}
	switch to {
	case models.REJECTED, models.CANCELLED:
		return nil
	case models.COMPLETED:
		// Allowed directly from PENDING, no forced pass through ACCEPTED.
		return nil
	case models.ACCEPTED:
		if from != models.PENDING {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
}

// ItemSyncTarget returns the availability status both referenced items must
// take after the given transition, and whether the items change at all.
// ACCEPTED reserves both items, COMPLETED sells them, and a rejection or
// cancellation of a previously accepted proposal releases them again.
func ItemSyncTarget(from, to models.ExchangeStatus) (models.ItemStatus, bool) {
	switch to {
	case models.ACCEPTED:
		return models.RESERVED, true
	case models.COMPLETED:
		return models.SOLD, true
	case models.REJECTED, models.CANCELLED:
		if from == models.ACCEPTED {
			return models.AVAILABLE, true
		}
	}
	return "", false
}
