package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/categorizer"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/importer/parser/bankcsv"
	"github.com/pocketledger/backend/internal/session"
)

// RegisterLedgerRoutes registers the routes for ledger uploads with the
// RouterGroup that is passed.
func (co *Controller) RegisterLedgerRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsLedger)
		r.POST("", co.UploadLedger)
	}
}

type LedgerUploadResponse struct {
	Data  *LedgerSummary `json:"data"`            // Summary of the uploaded ledger
	Error *string        `json:"error,omitempty"` // The error, if any occurred
}

type LedgerSummary struct {
	Expenses int `json:"expenses" example:"38"` // Number of expense rows in the working set
	Incomes  int `json:"incomes" example:"4"`   // Number of income rows in the working set
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Upload ledger
// @Description	Parses a bank-exported transaction CSV, categorizes every row against the category store and replaces the working set of the session. A file that cannot be parsed is rejected as a whole, the previous working set stays untouched.
// @Tags			Ledger
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	LedgerUploadResponse
// @Failure		400		{object}	LedgerUploadResponse
// @Param			file	formData	file	true	"Transaction CSV file"
// @Router			/v1/ledger [post]
func (co *Controller) UploadLedger(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, LedgerUploadResponse{Error: &e})
		return
	}
	defer f.Close()

	transactions, err := bankcsv.Parse(f)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, LedgerUploadResponse{Error: &e})
		return
	}

	categorizer.Apply(co.Store, transactions)
	co.Session = session.New(transactions)

	c.JSON(http.StatusCreated, LedgerUploadResponse{
		Data: &LedgerSummary{
			Expenses: len(co.Session.Expenses),
			Incomes:  len(co.Session.Incomes),
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Router			/v1/ledger [options]
func OptionsLedger(c *gin.Context) {
	httputil.OptionsPost(c)
}
