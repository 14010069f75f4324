// File: handlers/health.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"labassist/utils"
)

// HealthHandler serves the liveness endpoint and the dependency snapshot.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthDeps reports the latest background snapshot of Mongo and Redis
// reachability.
func (h *HealthHandler) HealthDeps(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
