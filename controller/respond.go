package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"isaacdex/platform"
	"isaacdex/service"
)

var logger = platform.Logger

// respondError maps the service error taxonomy onto HTTP statuses at the
// boundary. Internal causes are logged and never leak; upstream errors keep
// the provider's error text in the response.
func respondError(c *gin.Context, err error) {
	serr := service.AsError(err)
	switch serr.Kind {
	case service.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": serr.Message})
	case service.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": serr.Message})
	case service.KindUpstream:
		logger.Warnf("[%s] upstream error, %s", c.GetString("requestId"), serr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": serr.Error()})
	default:
		logger.Warnf("[%s] internal error, %s", c.GetString("requestId"), serr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": serr.Message})
	}
}

func parseID(c *gin.Context, entity string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " id"})
		return 0, false
	}
	return id, true
}
