package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// HealthController handles health check endpoints.
type HealthController struct {
	database HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(database HealthChecker) *HealthController {
	return &HealthController{
		database: database,
	}
}

// Check handles GET /health requests.
// An unreachable database reports 503 with status "degraded".
func (h *HealthController) Check(c *gin.Context) {
	status, dbStatus, code := "ok", "connected", http.StatusOK
	if h.database == nil || !h.database.HealthCheck(c.Request.Context()) {
		status, dbStatus, code = "degraded", "disconnected", http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
