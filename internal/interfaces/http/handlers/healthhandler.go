package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/infrastructure/queue"
)

// DatabasePinger reports database connectivity.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness plus the offline queue backlog,
// which operators watch during database outages.
type HealthHandler struct {
	db    DatabasePinger
	queue queue.MutationQueue
}

func NewHealthHandler(db DatabasePinger, q queue.MutationQueue) *HealthHandler {
	return &HealthHandler{db: db, queue: q}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	var backlog int64
	if h.queue != nil {
		if n, err := h.queue.Len(ctx); err == nil {
			backlog = n
		}
	}

	// A down database is degraded, not dead: writes queue until it returns.
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"database":      dbStatus,
		"queue_backlog": backlog,
	})
}
