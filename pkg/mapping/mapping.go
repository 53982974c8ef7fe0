// Package mapping converts between the domain models and the API wire types.
package mapping

import (
	"github.com/chris/barter-exchange/pkg/api"
	"github.com/chris/barter-exchange/pkg/models"
)

// ToApiAccount converts a domain Account model to an API Account model.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		Id:        account.Id,
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}

// ToDomainNewAccount converts an API NewAccount model to a domain Account model.
func ToDomainNewAccount(newAccount *api.NewAccount) *models.Account {
	return &models.Account{
		Name:  newAccount.Name,
		Email: newAccount.Email,
	}
}

// ToApiItem converts a domain Item model to an API Item model.
func ToApiItem(item *models.Item) *api.Item {
	return &api.Item{
		Id:           item.Id,
		AccountId:    item.AccountId,
		Name:         item.Name,
		Category:     item.Category,
		Condition:    item.Condition,
		Description:  item.Description,
		ImageUrl:     item.ImageUrl,
		Status:       string(item.Status),
		RegisteredAt: item.RegisteredAt,
	}
}

// ToDomainNewItem converts an API NewItem model to a domain Item model.
func ToDomainNewItem(newItem *api.NewItem) *models.Item {
	return &models.Item{
		AccountId:   newItem.AccountId,
		Name:        newItem.Name,
		Category:    newItem.Category,
		Condition:   newItem.Condition,
		Description: newItem.Description,
		ImageUrl:    newItem.ImageUrl,
	}
}

// ToApiExchange converts a domain Exchange model, with whatever relations
// were hydrated, to an API Exchange model.
func ToApiExchange(exchange *models.Exchange) *api.Exchange {
	out := &api.Exchange{
		Id:                exchange.Id,
		SenderItemId:      exchange.SenderItemId,
		ReceiverItemId:    exchange.ReceiverItemId,
		SenderAccountId:   exchange.SenderAccountId,
		ReceiverAccountId: exchange.ReceiverAccountId,
		Status:            string(exchange.Status),
		Message:           exchange.Message,
		CreatedAt:         exchange.CreatedAt,
		UpdatedAt:         exchange.UpdatedAt,
		ExchangedAt:       exchange.ExchangedAt,
	}
	if exchange.SenderItem != nil {
		out.SenderItem = ToApiItem(exchange.SenderItem)
	}
	if exchange.ReceiverItem != nil {
		out.ReceiverItem = ToApiItem(exchange.ReceiverItem)
	}
	if exchange.SenderAccount != nil {
		out.SenderAccount = ToApiAccount(exchange.SenderAccount)
	}
	if exchange.ReceiverAccount != nil {
		out.ReceiverAccount = ToApiAccount(exchange.ReceiverAccount)
	}
	for i := range exchange.Reviews {
		out.Reviews = append(out.Reviews, *ToApiReview(&exchange.Reviews[i]))
	}
	return out
}

// ToDomainNewExchange converts an API NewExchange model to a domain Exchange model.
// The store fills in id, timestamps and the default status.
func ToDomainNewExchange(newExchange *api.NewExchange) *models.Exchange {
	return &models.Exchange{
		SenderItemId:      newExchange.SenderItemId,
		ReceiverItemId:    newExchange.ReceiverItemId,
		SenderAccountId:   newExchange.SenderAccountId,
		ReceiverAccountId: newExchange.ReceiverAccountId,
		Status:            models.ExchangeStatus(newExchange.Status),
		Message:           newExchange.Message,
	}
}

// ToApiReview converts a domain Review model to an API Review model.
func ToApiReview(review *models.Review) *api.Review {
	return &api.Review{
		Id:         review.Id,
		ExchangeId: review.ExchangeId,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}

// ToDomainNewReview converts an API NewReview model to a domain Review model
// bound to its parent exchange.
func ToDomainNewReview(exchangeId string, newReview *api.NewReview) *models.Review {
	review := &models.Review{
		ExchangeId: exchangeId,
		Comment:    newReview.Comment,
	}
	if newReview.Rating != nil {
		review.Rating = *newReview.Rating
	}
	return review
}
