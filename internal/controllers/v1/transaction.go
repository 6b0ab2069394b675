package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/session"
	"github.com/pocketledger/backend/internal/types"
)

var errTransactionTypeInvalid = errors.New("the specified transaction type is invalid")

// RegisterTransactionRoutes registers the routes for transactions with the
// RouterGroup that is passed.
func (co *Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.PATCH("", co.UpdateTransactions)
	}
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`            // List of transactions
	Error *string              `json:"error,omitempty"` // The error, if any occurred
}

// TransactionQueryFilter contains the query parameters for the read-side
// operations over the working set.
type TransactionQueryFilter struct {
	Type     string   `form:"type" example:"Expense"`       // Filter by transaction type
	From     string   `form:"from" example:"2024-01-01"`    // Only transactions on or after this date
	To       string   `form:"to" example:"2024-03-31"`      // Only transactions on or before this date
	Category []string `form:"category" example:"Groceries"` // Filter by category names. Repeat to select multiple
}

func (f TransactionQueryFilter) parse() (session.Filter, error) {
	filter := session.Filter{Categories: f.Category}

	switch models.TransactionType(f.Type) {
	case "", models.TypeExpense, models.TypeIncome:
		filter.Type = models.TransactionType(f.Type)
	default:
		return session.Filter{}, errTransactionTypeInvalid
	}

	if f.From != "" {
		from, err := types.ParseDate(f.From)
		if err != nil {
			return session.Filter{}, fmt.Errorf("%w: %s", httputil.ErrInvalidQuery, err)
		}
		filter.From = from
	}

	if f.To != "" {
		to, err := types.ParseDate(f.To)
		if err != nil {
			return session.Filter{}, fmt.Errorf("%w: %s", httputil.ErrInvalidQuery, err)
		}
		filter.To = to
	}

	return filter, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get transactions
// @Description	Returns the transactions of the working set, optionally filtered by type, date range and categories
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			type		query	string	false	"Filter by transaction type (Expense or Income)"
// @Param			from		query	string	false	"Only transactions on or after this date (YYYY-MM-DD)"
// @Param			to			query	string	false	"Only transactions on or before this date (YYYY-MM-DD)"
// @Param			category	query	string	false	"Filter by category name. Repeat to select multiple"
func (co *Controller) GetTransactions(c *gin.Context) {
	var queryFilter TransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&queryFilter)

	filter, err := queryFilter.parse()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: co.Session.Transactions(filter)})
}

// @Summary		Update transaction categories
// @Description	Applies a batch of category edits to the working set. For every row whose category actually changes, a keyword phrase is mined from its narrative and taught to the new category for future automatic matching. Rows whose requested category equals the current one are skipped without touching the store.
// @Tags			Transactions
// @Produce		json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			edits	body		[]session.Edit	true	"Category edits"
// @Router			/v1/transactions [patch]
func (co *Controller) UpdateTransactions(c *gin.Context) {
	var edits []session.Edit

	if err := httputil.BindData(c, &edits); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if err := co.Session.ApplyEdits(co.Store, co.Extractor, edits); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
