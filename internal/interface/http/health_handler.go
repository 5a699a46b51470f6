package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness endpoint with a small status payload.
type HealthHandler struct {
	App    string
	Driver string
	// Ping checks the backing store; nil skips the check.
	Ping func(ctx context.Context) error
}

func NewHealthHandler(app, driver string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{App: app, Driver: driver, Ping: ping}
}

// Handle responds 200 always; a failing store ping degrades the reported
// status without failing the endpoint.
func (h *HealthHandler) Handle(c *gin.Context) {
	status := "ok"
	if h.Ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.Ping(ctx); err != nil {
			status = "degraded"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"app":       h.App,
		"driver":    h.Driver,
		"timestamp": time.Now().UTC(),
	})
}
