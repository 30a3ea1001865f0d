package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizboard-server/internal/logger"
)

// SnapshotService exports leaderboard snapshots.
type SnapshotService interface {
	Export(ctx context.Context) (string, error)
}

// Snapshot handles POST /quiz/snapshots.
type Snapshot struct {
	snapshotService SnapshotService
	logger          *logger.Logger
}

// NewSnapshot creates a new Snapshot handler.
func NewSnapshot(snapshotService SnapshotService, logger *logger.Logger) *Snapshot {
	return &Snapshot{snapshotService: snapshotService, logger: logger}
}

func (h *Snapshot) Create(c *gin.Context) {
	key, err := h.snapshotService.Export(c.Request.Context())
	if err != nil {
		c.JSON(handleError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key})
}
