package notify

// MessageType defines the type of a published event.
type MessageType string

const (
	// MessageTypeExchangeUpdate is for events about a created or
	// transitioned exchange.
	MessageTypeExchangeUpdate MessageType = "exchangeUpdate"
)

// Message represents a generic exchange event.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// ExchangeUpdatePayload is the payload for an exchangeUpdate event.
type ExchangeUpdatePayload struct {
	ExchangeID        string `json:"exchange_id"`
	SenderAccountID   string `json:"sender_account_id"`
	ReceiverAccountID string `json:"receiver_account_id"`
	Status            string `json:"status"`
}
