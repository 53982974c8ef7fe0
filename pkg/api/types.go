// Package api defines the wire types of the HTTP surface and the helpers
// for writing them.
package api

import (
	"time"
)

// Account is the API representation of an account.
type Account struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAccount is the request body for creating an account.
type NewAccount struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Item is the API representation of an item listing.
type Item struct {
	Id           string    `json:"id"`
	AccountId    string    `json:"account_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	Condition    string    `json:"condition,omitempty"`
	Description  string    `json:"description,omitempty"`
	ImageUrl     string    `json:"image_url,omitempty"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewItem is the request body for creating an item listing.
type NewItem struct {
	AccountId   string `json:"account_id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Description string `json:"description,omitempty"`
	ImageUrl    string `json:"image_url,omitempty"`
}

// Exchange is the API representation of a trade proposal, including the
// hydrated relations.
type Exchange struct {
	Id                string     `json:"id"`
	SenderItemId      string     `json:"sender_item_id"`
	ReceiverItemId    string     `json:"receiver_item_id"`
	SenderAccountId   string     `json:"sender_account_id"`
	ReceiverAccountId string     `json:"receiver_account_id"`
	Status            string     `json:"status"`
	Message           string     `json:"message,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	ExchangedAt       *time.Time `json:"exchanged_at,omitempty"`

	SenderItem      *Item    `json:"sender_item,omitempty"`
	ReceiverItem    *Item    `json:"receiver_item,omitempty"`
	SenderAccount   *Account `json:"sender_account,omitempty"`
	ReceiverAccount *Account `json:"receiver_account,omitempty"`
	Reviews         []Review `json:"reviews,omitempty"`
}

// NewExchange is the request body for proposing a trade. Status is optional
// and defaults to PENDING.
type NewExchange struct {
	SenderItemId      string `json:"sender_item_id"`
	ReceiverItemId    string `json:"receiver_item_id"`
	SenderAccountId   string `json:"sender_account_id"`
	ReceiverAccountId string `json:"receiver_account_id"`
	Status            string `json:"status,omitempty"`
	Message           string `json:"message,omitempty"`
}

// UpdateExchangeStatus is the request body for a status transition.
type UpdateExchangeStatus struct {
	Status string `json:"status"`
}

// Review is the API representation of an exchange review.
type Review struct {
	Id         string    `json:"id"`
	ExchangeId string    `json:"exchange_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewReview is the request body for reviewing a completed exchange. Rating
// is a pointer so a missing field is distinguishable from zero.
type NewReview struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment,omitempty"`
}
