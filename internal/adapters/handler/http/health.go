package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// PingFunc checks one backing dependency.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	checks    map[string]PingFunc
	startTime time.Time
}

func NewHealthHandler(checks map[string]PingFunc, startTime time.Time) *HealthHandler {
	return &HealthHandler{
		checks:    checks,
		startTime: startTime,
	}
}

// Health reports every dependency as connected or unreachable. Any
// unreachable dependency turns the response into a 503.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	body := gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).String(),
	}
	statusCode := http.StatusOK

	for name, ping := range h.checks {
		status := "connected"
		if err := ping(ctx); err != nil {
			status = "unreachable"
			statusCode = http.StatusServiceUnavailable
			body["status"] = "degraded"
		}
		body[name] = status
	}

	c.JSON(statusCode, body)
}
