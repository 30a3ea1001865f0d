package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizboard-server/internal/logger"
	"github.com/dtroode/quizboard-server/internal/model"
)

// Health answers liveness and readiness probes.
type Health struct {
	pinger model.Pinger
	logger *logger.Logger
}

// NewHealth creates a Health handler. A nil pinger always reports ready.
func NewHealth(pinger model.Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

func (h *Health) Root(c *gin.Context) {
	c.String(http.StatusOK, "quiz backend running")
}

func (h *Health) Ready(c *gin.Context) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Error("Health handler: database unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
