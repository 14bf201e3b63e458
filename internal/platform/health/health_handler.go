// Package health provides the service liveness endpoint.
package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Handler reports store and cache connectivity on /healthz.
type Handler struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewHandler creates a health Handler. rdb may be nil when the cache is
// not configured.
func NewHandler(db *gorm.DB, rdb *redis.Client) *Handler {
	return &Handler{db: db, rdb: rdb}
}

// Check handles GET /healthz. A database failure makes the service
// unhealthy (503); a missing or failing cache only degrades the report.
func (h *Handler) Check(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	redisStatus := "not configured"
	if h.rdb != nil {
		if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = "failed"
		} else {
			redisStatus = "connected"
		}
	}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     "service unavailable",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"redis":     redisStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
