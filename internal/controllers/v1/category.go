package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func (co *Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Keywords of a category
	{
		r.OPTIONS("/:name/keywords", OptionsKeywordList)
		r.POST("/:name/keywords", co.CreateKeyword)
	}
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`            // List of categories in evaluation order
	Error *string           `json:"error,omitempty"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`            // The category
	Error *string          `json:"error,omitempty"` // The error, if any occurred
}

type CategoryEditable struct {
	Name string `json:"name" binding:"required" example:"Groceries"` // Name of the category
}

type KeywordEditable struct {
	Keyword string `json:"keyword" binding:"required" example:"woolworths"` // Keyword to match narratives against
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/{name}/keywords [options]
func OptionsKeywordList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get categories
// @Description	Returns the categories of the store in evaluation order
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co *Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: co.Store.Categories})
}

// @Summary		Create category
// @Description	Creates a new category with an empty keyword set
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co *Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	if err := co.Store.AddCategory(editable.Name); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, _ := co.Store.Get(editable.Name)
	c.JSON(http.StatusCreated, CategoryResponse{Data: category})
}

// @Summary		Create keyword
// @Description	Adds a keyword to a category. The keyword is normalized to lower case and trimmed before it is stored.
// @Tags			Categories
// @Produce		json
// @Success		201		{object}	CategoryResponse
// @Failure		400		{object}	CategoryResponse
// @Failure		404		{object}	CategoryResponse
// @Failure		500		{object}	CategoryResponse
// @Param			name	path		string			true	"Name of the category"
// @Param			keyword	body		KeywordEditable	true	"Keyword"
// @Router			/v1/categories/{name}/keywords [post]
func (co *Controller) CreateKeyword(c *gin.Context) {
	var editable KeywordEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	name := c.Param("name")
	if err := co.Store.AddKeyword(name, editable.Keyword); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, _ := co.Store.Get(name)
	c.JSON(http.StatusCreated, CategoryResponse{Data: category})
}
