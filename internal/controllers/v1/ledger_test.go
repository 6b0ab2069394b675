package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ledgerHeader = "Serial,Date,Narrative,Debit Amount,Credit Amount\n"

// uploadFile builds a multipart request body containing the file content.
func uploadFile(t *testing.T, filename, content string) (*bytes.Buffer, map[string]string) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.Nil(t, err)

	_, err = part.Write([]byte(content))
	require.Nil(t, err)
	require.Nil(t, writer.Close())

	return &buf, map[string]string{"Content-Type": writer.FormDataContentType()}
}

func (suite *TestSuiteStandard) uploadLedger(t *testing.T, content string, expectedStatus ...int) v1.LedgerUploadResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body, headers := uploadFile(t, "ledger.csv", content)
	r := test.Request(suite.co, t, http.MethodPost, "/v1/ledger", body, headers)
	test.AssertHTTPStatus(t, expectedStatus[0], &r)

	var response v1.LedgerUploadResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestLedgerOptions() {
	r := test.Request(suite.co, suite.T(), http.MethodOptions, "/v1/ledger", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestUploadLedger() {
	response := suite.uploadLedger(suite.T(),
		ledgerHeader+
			"1,25/03/2024,EFTPOS WOOLWORTHS 123 SYDNEY,45.00,\n"+
			"2,26/03/2024,SALARY ACME PTY LTD,,1500.00\n")

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 1, response.Data.Expenses)
	assert.Equal(suite.T(), 1, response.Data.Incomes)
}

// Uploading a ledger categorizes it against the store in the same request.
func (suite *TestSuiteStandard) TestUploadLedgerCategorizes() {
	suite.createTestCategory(suite.T(), "Groceries")
	r := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/categories/Groceries/keywords", v1.KeywordEditable{Keyword: "woolworths"})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	suite.uploadLedger(suite.T(), ledgerHeader+"1,25/03/2024,EFTPOS WOOLWORTHS 123 SYDNEY,45.00,\n")

	r = test.Request(suite.co, suite.T(), http.MethodGet, "/v1/transactions", nil)
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)

	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), "Groceries", list.Data[0].Category)
	assert.Equal(suite.T(), models.TypeExpense, list.Data[0].Type)
}

func (suite *TestSuiteStandard) TestUploadLedgerFails() {
	tests := []struct {
		name    string
		content string
		err     string
	}{
		{"missing column", "Serial,Date,Narrative,Debit Amount\n", "missing a required column"},
		{"malformed date", ledgerHeader + "1,2024-03-25,X,45.00,\n", "could not parse date"},
		{"empty file", "", "does not contain a header row"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.uploadLedger(t, tt.content, http.StatusBadRequest)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

// A failed upload leaves the previous working set untouched.
func (suite *TestSuiteStandard) TestUploadLedgerKeepsSessionOnFailure() {
	suite.uploadLedger(suite.T(), ledgerHeader+"1,25/03/2024,EFTPOS WOOLWORTHS 123 SYDNEY,45.00,\n")
	suite.uploadLedger(suite.T(), ledgerHeader+"1,not-a-date,X,1.00,\n", http.StatusBadRequest)

	r := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/transactions", nil)
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)
}

// A fresh upload replaces the working set wholesale.
func (suite *TestSuiteStandard) TestUploadLedgerReplacesSession() {
	suite.uploadLedger(suite.T(), ledgerHeader+"1,25/03/2024,EFTPOS WOOLWORTHS 123 SYDNEY,45.00,\n")
	suite.uploadLedger(suite.T(), ledgerHeader+"1,01/04/2024,OPAL TOP UP,20.00,\n")

	r := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/transactions", nil)
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)

	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), "OPAL TOP UP", list.Data[0].Narrative)
}

func (suite *TestSuiteStandard) TestUploadLedgerWrongRequests() {
	// No file sent
	r := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/ledger", "not a form")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	// Wrong file suffix
	body, headers := uploadFile(suite.T(), "ledger.pdf", "whatever")
	r = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/ledger", body, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response v1.LedgerUploadResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, ".csv")
}
