package models

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionType describes whether a transaction is money going out or
// coming in. It is derived from which amount field is set.
type TransactionType string

const (
	TypeExpense TransactionType = "Expense"
	TypeIncome  TransactionType = "Income"
)

// Transaction is one row of an uploaded ledger. At most one of Debit and
// Credit is nonzero. The category name always references a key of the
// category store and defaults to DefaultCategory.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	Date      types.Date      `json:"date"`
	Narrative string          `json:"narrative"`
	Debit     decimal.Decimal `json:"debitAmount"`
	Credit    decimal.Decimal `json:"creditAmount"`
	Category  string          `json:"category"`
	Type      TransactionType `json:"type"`
}

// Amount returns the amount of the transaction, regardless of direction.
func (t Transaction) Amount() decimal.Decimal {
	if t.Debit.IsPositive() {
		return t.Debit
	}

	return t.Credit
}
