// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterRoutes registers the health check routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup, store *models.CategoryStore) {
	r.OPTIONS("", Options)
	r.GET("", Get(store))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	map[string]string
// @Router			/healthz [get]
func Get(store *models.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Check(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
