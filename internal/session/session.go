// Package session holds the working state of one interactive session: the
// categorized transactions of the last uploaded ledger, split by type.
package session

import (
	"errors"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/categorizer"
	"github.com/pocketledger/backend/internal/models"
)

// Session is the working set of an uploaded ledger. Expenses and Incomes
// are copies of the loaded rows, so edits never alter the raw ledger, only
// the working set the dashboard reads.
type Session struct {
	Expenses []models.Transaction
	Incomes  []models.Transaction
}

// New builds a session from a parsed and categorized ledger. Rows with a
// debit amount become expenses, rows with a credit amount become incomes.
// Rows where both amounts are zero carry no information and are dropped.
func New(transactions []models.Transaction) *Session {
	s := &Session{
		Expenses: []models.Transaction{},
		Incomes:  []models.Transaction{},
	}

	for _, t := range transactions {
		switch {
		case t.Debit.IsPositive():
			s.Expenses = append(s.Expenses, t)
		case t.Credit.IsPositive():
			s.Incomes = append(s.Incomes, t)
		}
	}

	return s
}

// Edit is one requested category change, addressing the row by ID.
type Edit struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	Category string    `json:"category" binding:"required"`
}

// ApplyEdits applies a batch of category edits to the working set. Edits
// that request the category a row already has are skipped without touching
// the store. For every real change, a keyword phrase is mined from the
// row's narrative and taught to the new category so future uploads match
// automatically. A phrase that is empty or already known is not an error,
// the edit still applies; store persistence failures propagate.
func (s *Session) ApplyEdits(store *models.CategoryStore, extractor categorizer.Extractor, edits []Edit) error {
	for _, edit := range edits {
		row, err := s.find(edit.ID)
		if err != nil {
			return err
		}

		if row.Category == edit.Category {
			continue
		}

		if !store.Exists(edit.Category) {
			return models.ErrCategoryNotFound
		}

		row.Category = edit.Category

		err = store.AddKeyword(edit.Category, extractor.Phrase(row.Narrative))
		if err != nil && !errors.Is(err, models.ErrKeywordEmpty) && !errors.Is(err, models.ErrKeywordExists) {
			return err
		}
	}

	return nil
}

func (s *Session) find(id uuid.UUID) (*models.Transaction, error) {
	for i := range s.Expenses {
		if s.Expenses[i].ID == id {
			return &s.Expenses[i], nil
		}
	}
	for i := range s.Incomes {
		if s.Incomes[i].ID == id {
			return &s.Incomes[i], nil
		}
	}

	return nil, models.ErrTransactionNotFound
}
