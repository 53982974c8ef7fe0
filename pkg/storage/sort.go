package storage

import (
	"sort"

	"github.com/chris/barter-exchange/pkg/models"
)

// SortExchanges orders a participant listing: completed proposals first,
// newest completion leading, then open ones, ties broken by ID descending.
func SortExchanges(exchanges []models.Exchange) {
	sort.Slice(exchanges, func(i, j int) bool {
		a, b := exchanges[i].ExchangedAt, exchanges[j].ExchangedAt
		switch {
		case a != nil && b != nil && !a.Equal(*b):
			return a.After(*b)
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return exchanges[i].Id > exchanges[j].Id
	})
}
