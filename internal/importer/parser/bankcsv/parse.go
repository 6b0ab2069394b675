// Package bankcsv parses bank-exported transaction ledger CSV files.
package bankcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// The required columns of a ledger export. Extra columns are ignored, the
// Serial column is dropped after parsing.
const (
	ColumnSerial    = "Serial"
	ColumnDate      = "Date"
	ColumnNarrative = "Narrative"
	ColumnDebit     = "Debit Amount"
	ColumnCredit    = "Credit Amount"
)

var (
	ErrNoHeader      = errors.New("the file does not contain a header row")
	ErrMissingColumn = errors.New("the file is missing a required column")
)

// Parse parses a ledger CSV export into transactions. Every error rejects
// the whole file, no partial result is returned.
func Parse(f io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(f)

	// Column order is not fixed, so resolve the required columns from the
	// header by name.
	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("could not read the header row: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, name := range []string{ColumnSerial, ColumnDate, ColumnNarrative, ColumnDebit, ColumnCredit} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var transactions []models.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		date, err := types.ParseLedgerDate(record[columns[ColumnDate]])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not parse date: %w", err))
		}

		debit, err := parseAmount(record[columns[ColumnDebit]])
		if err != nil {
			return csvReadError(reader, errors.New("the debit amount could not be parsed to a decimal"))
		}

		credit, err := parseAmount(record[columns[ColumnCredit]])
		if err != nil {
			return csvReadError(reader, errors.New("the credit amount could not be parsed to a decimal"))
		}

		if debit.IsPositive() && credit.IsPositive() {
			return csvReadError(reader, errors.New("both debit and credit amount are set for the transaction"))
		}

		t := models.Transaction{
			ID:        uuid.New(),
			Date:      date,
			Narrative: record[columns[ColumnNarrative]],
			Debit:     debit,
			Credit:    credit,
			Category:  models.DefaultCategory,
		}

		if debit.IsPositive() {
			t.Type = models.TypeExpense
		} else if credit.IsPositive() {
			t.Type = models.TypeIncome
		}

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// parseAmount parses a numeric cell. Empty cells are zero, not an error.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, errors.New("amounts must not be negative")
	}

	return amount, nil
}

// csvReadError returns the error with the line of the input the error
// occurred in included in the message.
func csvReadError(r *csv.Reader, err error) ([]models.Transaction, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return nil, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
