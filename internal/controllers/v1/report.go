package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/session"
)

// RegisterReportRoutes registers the routes for the dashboard report with
// the RouterGroup that is passed.
func (co *Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsReport)
		r.GET("", co.GetReport)
	}
}

type ReportResponse struct {
	Data  *session.Report `json:"data"`            // The dashboard report
	Error *string         `json:"error,omitempty"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Report
// @Success		204
// @Router			/v1/report [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get report
// @Description	Returns the dashboard figures over the filtered working set: total income, total expense, the net balance, the daily cash flow series and the expense totals per category
// @Tags			Report
// @Produce		json
// @Success		200			{object}	ReportResponse
// @Failure		400			{object}	ReportResponse
// @Router			/v1/report [get]
// @Param			type		query	string	false	"Filter by transaction type (Expense or Income)"
// @Param			from		query	string	false	"Only transactions on or after this date (YYYY-MM-DD)"
// @Param			to			query	string	false	"Only transactions on or before this date (YYYY-MM-DD)"
// @Param			category	query	string	false	"Filter by category name. Repeat to select multiple"
func (co *Controller) GetReport(c *gin.Context) {
	var queryFilter TransactionQueryFilter
	_ = c.Bind(&queryFilter)

	filter, err := queryFilter.parse()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{Error: &e})
		return
	}

	report := co.Session.Report(filter)
	c.JSON(http.StatusOK, ReportResponse{Data: &report})
}
