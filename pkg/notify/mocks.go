package notify

import "context"

// NoOpNotifier is a notifier that does nothing.
type NoOpNotifier struct{}

// NotifyExchangeUpdate does nothing.
func (n *NoOpNotifier) NotifyExchangeUpdate(ctx context.Context, message Message) error {
	return nil
}
