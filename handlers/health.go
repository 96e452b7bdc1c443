package handlers

import (
	"net/http"
	"time"

	"bookeasy/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /api/health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "booking service is running",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"dependencies": utils.GetHealthStatus(),
	})
}
