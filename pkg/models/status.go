package models

// ExchangeStatus defines the possible states of a trade proposal.
type ExchangeStatus string

const (
	PENDING   ExchangeStatus = "PENDING"
	ACCEPTED  ExchangeStatus = "ACCEPTED"
	COMPLETED ExchangeStatus = "COMPLETED"
	REJECTED  ExchangeStatus = "REJECTED"
	CANCELLED ExchangeStatus = "CANCELLED"
)

// ItemStatus defines the availability of a listed item.
type ItemStatus string

const (
	AVAILABLE ItemStatus = "AVAILABLE"
	RESERVED  ItemStatus = "RESERVED"
	SOLD      ItemStatus = "SOLD"
)

// ParseExchangeStatus validates a raw status value from a client.
func ParseExchangeStatus(raw string) (ExchangeStatus, bool) {
	switch s := ExchangeStatus(raw); s {
	case PENDING, ACCEPTED, COMPLETED, REJECTED, CANCELLED:
		return s, true
	default:
		return "", false
	}
}

// IsTerminal reports whether no further transitions are permitted.
func (s ExchangeStatus) IsTerminal() bool {
	switch s {
	case COMPLETED, REJECTED, CANCELLED:
		return true
	}
	return false
}
