package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"isaacdex/service"
)

type ItemController struct {
	items *service.ItemService
}

func NewItemController(items *service.ItemService) *ItemController {
	return &ItemController{items: items}
}

type listItemsQuery struct {
	Page  int    `form:"page,default=1" binding:"min=1"`
	Limit int    `form:"limit,default=10" binding:"min=1"`
	Q     string `form:"q"`
	Sort  string `form:"sort"`
}

// List handles GET /items/ with pagination, free-text search and sorting.
func (ctrl *ItemController) List(c *gin.Context) {
	var query listItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warnf("[%s] Invalid item list query, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := ctrl.items.List(service.ListQuery{Page: query.Page, Limit: query.Limit, Q: query.Q}, query.Sort)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctrl *ItemController) Detail(c *gin.Context) {
	id, ok := parseID(c, "item")
	if !ok {
		return
	}
	item, err := ctrl.items.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Patch applies a partial update; JSON nulls in the body are ignored and
// never clear a stored value.
func (ctrl *ItemController) Patch(c *gin.Context) {
	id, ok := parseID(c, "item")
	if !ok {
		return
	}

	var patch service.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Warnf("[%s] Invalid item patch body, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	item, err := ctrl.items.Patch(id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ctrl *ItemController) Delete(c *gin.Context) {
	id, ok := parseID(c, "item")
	if !ok {
		return
	}
	if err := ctrl.items.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
