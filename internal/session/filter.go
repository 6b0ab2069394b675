package session

import (
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"golang.org/x/exp/slices"
)

// Filter restricts the working set for the read-side operations. Zero
// dates leave the range unbounded on that side, the range is inclusive. A
// nil category slice selects all categories. Filtering never mutates the
// session or the store.
type Filter struct {
	From       types.Date
	To         types.Date
	Categories []string
	Type       models.TransactionType
}

func (f Filter) matches(t models.Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.Date.After(f.To) {
		return false
	}
	if f.Categories != nil && !slices.Contains(f.Categories, t.Category) {
		return false
	}

	return true
}

// Transactions returns the rows of the working set that the filter selects,
// expenses first, in ledger order.
func (s *Session) Transactions(f Filter) []models.Transaction {
	// When there are no matches, we want an empty list, not null
	matched := make([]models.Transaction, 0)

	for _, t := range s.Expenses {
		if f.matches(t) {
			matched = append(matched, t)
		}
	}
	for _, t := range s.Incomes {
		if f.matches(t) {
			matched = append(matched, t)
		}
	}

	return matched
}
