package handlers

import (
	"net/http"

	"wellnest/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest Mongo/Redis health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "message": "Hi, I'm Wellnest"})
}
