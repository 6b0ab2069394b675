// Package v1 implements the v1 API of the ledger backend.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/categorizer"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/session"
)

// Controller holds the state of the interactive session: the category
// store, the working set of the last uploaded ledger and the keyword
// extractor. All handlers are methods on it, there is no package-level
// state.
type Controller struct {
	Store     *models.CategoryStore
	Session   *session.Session
	Extractor categorizer.Extractor
}

// NewController returns a Controller with an empty working set.
func NewController(store *models.CategoryStore, extractor categorizer.Extractor) *Controller {
	return &Controller{
		Store:     store,
		Session:   session.New(nil),
		Extractor: extractor,
	}
}

// RegisterRoutes registers the v1 routes with the RouterGroup that is
// passed.
func (co *Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("", co.GetV1)
		r.OPTIONS("", OptionsV1)
	}

	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterLedgerRoutes(r.Group("/ledger"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterReportRoutes(r.Group("/report"))
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Categories   string `json:"categories" example:"https://example.com/v1/categories"`
	Ledger       string `json:"ledger" example:"https://example.com/v1/ledger"`
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions"`
	Report       string `json:"report" example:"https://example.com/v1/report"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func (co *Controller) GetV1(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(200, V1Response{
		Links: V1Links{
			Categories:   url + "/categories",
			Ledger:       url + "/ledger",
			Transactions: url + "/transactions",
			Report:       url + "/report",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
