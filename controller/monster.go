package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"isaacdex/service"
)

type MonsterController struct {
	monsters *service.MonsterService
}

func NewMonsterController(monsters *service.MonsterService) *MonsterController {
	return &MonsterController{monsters: monsters}
}

type listMonstersQuery struct {
	Page  int    `form:"page,default=1" binding:"min=1"`
	Limit int    `form:"limit,default=10" binding:"min=1"`
	Q     string `form:"q"`
}

// List handles GET /monsters/ with pagination and free-text search. There is
// no sort parameter, monsters come back in natural order.
func (ctrl *MonsterController) List(c *gin.Context) {
	var query listMonstersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warnf("[%s] Invalid monster list query, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := ctrl.monsters.List(service.ListQuery{Page: query.Page, Limit: query.Limit, Q: query.Q})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctrl *MonsterController) Detail(c *gin.Context) {
	id, ok := parseID(c, "monster")
	if !ok {
		return
	}
	monster, err := ctrl.monsters.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, monster)
}

func (ctrl *MonsterController) Create(c *gin.Context) {
	var input service.MonsterCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid monster create body, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	monster, err := ctrl.monsters.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, monster)
}

// Patch applies every recognized key present in the body, including explicit
// nulls, which clear the stored value. This is deliberately looser than the
// item patch.
func (ctrl *MonsterController) Patch(c *gin.Context) {
	id, ok := parseID(c, "monster")
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		logger.Warnf("[%s] Invalid monster patch body, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	monster, err := ctrl.monsters.Patch(id, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, monster)
}

func (ctrl *MonsterController) Delete(c *gin.Context) {
	id, ok := parseID(c, "monster")
	if !ok {
		return
	}
	if err := ctrl.monsters.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Monster deleted successfully"})
}
