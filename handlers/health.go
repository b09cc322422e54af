package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicbook/utils"
)

// Health handles GET /health, reporting database and cache connectivity.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	db := "disconnected"
	if status.Mongo {
		db = "connected"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"db":        db,
		"redis":     status.Redis,
		"checkedAt": status.CheckedAt,
	})
}
