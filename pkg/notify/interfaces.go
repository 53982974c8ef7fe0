// Package notify publishes exchange lifecycle events for downstream
// consumers (feeds, notification workers).
package notify

import (
	"context"
)

// Notifier defines the interface for publishing exchange events.
type Notifier interface {
	// NotifyExchangeUpdate publishes an event for a created or transitioned
	// exchange.
	NotifyExchangeUpdate(ctx context.Context, message Message) error
}
