package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/session"
	"github.com/pocketledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) transactions(t *testing.T, query string) []models.Transaction {
	r := test.Request(suite.co, t, http.MethodGet, "/v1/transactions"+query, nil)
	test.AssertHTTPStatus(t, http.StatusOK, &r)

	var response v1.TransactionListResponse
	test.DecodeResponse(t, &r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	r := test.Request(suite.co, suite.T(), http.MethodOptions, "/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "GET, PATCH", r.Header().Get("allow"))
}

// Without an uploaded ledger the working set is empty, not an error.
func (suite *TestSuiteStandard) TestGetTransactionsEmptySession() {
	transactions := suite.transactions(suite.T(), "")
	assert.NotNil(suite.T(), transactions)
	assert.Empty(suite.T(), transactions)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilters() {
	suite.uploadLedger(suite.T(),
		ledgerHeader+
			"1,25/03/2024,EFTPOS WOOLWORTHS 123 SYDNEY,45.00,\n"+
			"2,28/03/2024,OPAL TOP UP,20.00,\n"+
			"3,01/04/2024,SALARY ACME PTY LTD,,1500.00\n")

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"no filter", "", 3},
		{"type expense", "?type=Expense", 2},
		{"type income", "?type=Income", 1},
		{"from", "?from=2024-03-28", 2},
		{"to", "?to=2024-03-28", 2},
		{"range", "?from=2024-03-26&to=2024-03-28", 1},
		{"category", "?category=Uncategorised", 3},
		{"unknown category", "?category=Groceries", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Len(t, suite.transactions(t, tt.query), tt.expected)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"invalid type", "?type=Transfer"},
		{"invalid from", "?from=25/03/2024"},
		{"invalid to", "?to=yesterday"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, "/v1/transactions"+tt.query, nil)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &r)
		})
	}
}

// The end-to-end learning loop: editing a row's category mines a keyword
// from its narrative, and the next upload matches it automatically.
func (suite *TestSuiteStandard) TestUpdateTransactions() {
	suite.createTestCategory(suite.T(), "Groceries")
	r := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/categories/Groceries/keywords", v1.KeywordEditable{Keyword: "woolworths"})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)
	suite.createTestCategory(suite.T(), "Dining")

	suite.uploadLedger(suite.T(), ledgerHeader+"1,25/03/2024,EFTPOS WOOLWORTHS 123 SYDNEY,45.00,\n")

	row := suite.transactions(suite.T(), "")[0]
	require.Equal(suite.T(), "Groceries", row.Category)
	require.Equal(suite.T(), models.TypeExpense, row.Type)

	r = test.Request(suite.co, suite.T(), http.MethodPatch, "/v1/transactions", []session.Edit{
		{ID: row.ID, Category: "Dining"},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	// The edit is visible in the working set
	assert.Equal(suite.T(), "Dining", suite.transactions(suite.T(), "")[0].Category)

	// The keyword was mined from tokens 3 to 6 of the narrative
	r = test.Request(suite.co, suite.T(), http.MethodGet, "/v1/categories", nil)
	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)

	require.Len(suite.T(), categories.Data, 3)
	assert.Equal(suite.T(), "Dining", categories.Data[2].Name)
	assert.Equal(suite.T(), []string{"sydney"}, categories.Data[2].Keywords)

	// A later upload with the learned keyword is categorized automatically.
	// "Dining" is evaluated after "Groceries", so it wins for rows that
	// match both
	suite.uploadLedger(suite.T(),
		ledgerHeader+
			"1,02/04/2024,DINNER AT 99 SYDNEY TOWER,89.00,\n"+
			"2,03/04/2024,EFTPOS WOOLWORTHS 123 SYDNEY,45.00,\n")

	rows := suite.transactions(suite.T(), "")
	require.Len(suite.T(), rows, 2)
	assert.Equal(suite.T(), "Dining", rows[0].Category)
	assert.Equal(suite.T(), "Dining", rows[1].Category)
}

func (suite *TestSuiteStandard) TestUpdateTransactionsFails() {
	suite.createTestCategory(suite.T(), "Groceries")
	suite.uploadLedger(suite.T(), ledgerHeader+"1,25/03/2024,EFTPOS WOOLWORTHS 123 SYDNEY,45.00,\n")

	row := suite.transactions(suite.T(), "")[0]

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"unknown transaction", []session.Edit{{ID: uuid.New(), Category: "Groceries"}}, http.StatusNotFound},
		{"unknown category", []session.Edit{{ID: row.ID, Category: "Missing"}}, http.StatusNotFound},
		{"empty body", "", http.StatusBadRequest},
		{"broken JSON", `[{"id":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPatch, "/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}
