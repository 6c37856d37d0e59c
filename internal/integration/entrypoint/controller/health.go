// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeHealthChecker func() bool
	version            string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storeHealthChecker func() bool, version string) *HealthController {
	return &HealthController{
		storeHealthChecker: storeHealthChecker,
		version:            version,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its session store.
func (h *HealthController) Check(c *gin.Context) {
	storeStatus := "disconnected"
	if h.storeHealthChecker != nil && h.storeHealthChecker() {
		storeStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		Store:     storeStatus,
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
