package models

import (
	"time"
)

// Account represents a marketplace participant. The exchange core only needs
// it as a foreign reference and for hydrating proposal summaries.
type Account struct {
	Id        string    `dynamodbav:"id"`
	Name      string    `dynamodbav:"name"`
	Email     string    `dynamodbav:"email"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

// Item represents a listed item. Its availability status is overwritten by
// exchange transitions; everything else is owner-mutable outside this core.
type Item struct {
	Id           string     `dynamodbav:"id"`
	AccountId    string     `dynamodbav:"account_id"`
	Name         string     `dynamodbav:"name"`
	Category     string     `dynamodbav:"category"`
	Condition    string     `dynamodbav:"condition"`
	Description  string     `dynamodbav:"description"`
	ImageUrl     string     `dynamodbav:"image_url"`
	Status       ItemStatus `dynamodbav:"status"`
	RegisteredAt time.Time  `dynamodbav:"registered_at"`
}

// Exchange represents a trade proposal between two accounts, each side
// committing one item. ExchangedAt is set only when the proposal completes.
type Exchange struct {
	Id                string         `dynamodbav:"id"`
	SenderItemId      string         `dynamodbav:"sender_item_id"`
	ReceiverItemId    string         `dynamodbav:"receiver_item_id"`
	SenderAccountId   string         `dynamodbav:"sender_account_id"`
	ReceiverAccountId string         `dynamodbav:"receiver_account_id"`
	Status            ExchangeStatus `dynamodbav:"status"`
	Message           string         `dynamodbav:"message,omitempty"`
	CreatedAt         time.Time      `dynamodbav:"created_at"`
	UpdatedAt         time.Time      `dynamodbav:"updated_at"`
	ExchangedAt       *time.Time     `dynamodbav:"exchanged_at,omitempty"`

	// Hydrated relations, populated on reads. Not persisted on the
	// exchange record itself.
	SenderItem      *Item    `dynamodbav:"-"`
	ReceiverItem    *Item    `dynamodbav:"-"`
	SenderAccount   *Account `dynamodbav:"-"`
	ReceiverAccount *Account `dynamodbav:"-"`
	Reviews         []Review `dynamodbav:"-"`
}

// Review is a rating attached to a completed exchange. Reviews are immutable
// and are removed only by the cascade delete of their parent exchange.
type Review struct {
	Id         string    `dynamodbav:"id"`
	ExchangeId string    `dynamodbav:"exchange_id"`
	Rating     int       `dynamodbav:"rating"`
	Comment    string    `dynamodbav:"comment,omitempty"`
	CreatedAt  time.Time `dynamodbav:"created_at"`
}
