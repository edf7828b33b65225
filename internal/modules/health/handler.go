package health

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sendikahub/core/internal/database"
	"github.com/sendikahub/core/internal/pkg/redis"
	"github.com/sendikahub/core/internal/pkg/response"
)

// Handler exposes liveness and dependency health endpoints.
type Handler struct {
	mongo     *database.Mongo
	redis     *redis.Client
	startedAt time.Time
}

func NewHandler(mongo *database.Mongo, rdb *redis.Client) *Handler {
	return &Handler{mongo: mongo, redis: rdb, startedAt: time.Now()}
}

// RegisterRoutes mounts health routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", h.ping)
	rg.GET("/health", h.health)
}

// ping GET /ping
func (h *Handler) ping(c *gin.Context) {
	response.OK(c, gin.H{"message": "pong"})
}

// health GET /health
func (h *Handler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	mongoStatus := "ok"
	if err := h.mongo.Ping(ctx); err != nil {
		mongoStatus = "unreachable"
	}

	redisStatus := "ok"
	if h.redis == nil {
		redisStatus = "disabled"
	} else if err := h.redis.Raw().Ping(ctx).Err(); err != nil {
		redisStatus = "unreachable"
	}

	status := "ok"
	if mongoStatus != "ok" {
		status = "degraded"
	}

	response.OK(c, gin.H{
		"status": status,
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
		"components": gin.H{
			"mongo": mongoStatus,
			"redis": redisStatus,
		},
	})
}
