package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sendikahub/core/internal/middleware"
	"github.com/sendikahub/core/internal/modules/auth"
	"github.com/sendikahub/core/internal/modules/content/announcement"
	"github.com/sendikahub/core/internal/modules/content/document"
	"github.com/sendikahub/core/internal/modules/content/event"
	"github.com/sendikahub/core/internal/modules/content/kamuar"
	"github.com/sendikahub/core/internal/modules/content/media"
	"github.com/sendikahub/core/internal/modules/content/member"
	"github.com/sendikahub/core/internal/modules/content/press"
	"github.com/sendikahub/core/internal/modules/content/slider"
	"github.com/sendikahub/core/internal/modules/health"
	"github.com/sendikahub/core/internal/modules/storage"
	"github.com/sendikahub/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (a *App) registerRoutes(db *mongo.Database) {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api/v1")
	api.Use(middleware.OptionalAuth())

	if a.redis != nil {
		api.Use(middleware.RateLimit(a.redis.Raw()))
		api.Use(middleware.HTTPCache(a.redis.Raw(), middleware.HTTPCacheOptions{
			TTL: 15 * time.Second,
			SkipPaths: []string{
				"/api/v1/auth/*",
				"/api/v1/members/*",
				"/api/v1/files/*",
				"/api/v1/health",
			},
		}))
	}

	health.NewHandler(a.mongo, a.redis).RegisterRoutes(api)
	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	announcement.NewHandler(announcement.NewService(db), a.redis).RegisterRoutes(api, authMW)
	event.NewHandler(event.NewService(db)).RegisterRoutes(api, authMW)
	press.NewHandler(press.NewService(db), a.redis).RegisterRoutes(api, authMW)
	document.NewHandler(document.NewService(db)).RegisterRoutes(api, authMW)
	media.NewHandler(media.NewService(db)).RegisterRoutes(api, authMW)
	member.NewHandler(member.NewService(db)).RegisterRoutes(api, authMW)
	slider.NewHandler(slider.NewService(db)).RegisterRoutes(api, authMW)
	kamuar.NewHandler(kamuar.NewService(db)).RegisterRoutes(api, authMW)

	storage.NewHandler(a.cfg.StaticDir, a.buildS3Uploader(), a.logger).RegisterRoutes(api, authMW)

	api.POST("/clean_cache", authMW, a.cleanCache)
	api.GET("/cron", authMW, a.listCronJobs)
}

// listCronJobs GET /cron  [auth]
func (a *App) listCronJobs(c *gin.Context) {
	response.OK(c, a.sched.List())
}

func (a *App) buildS3Uploader() *storage.S3Uploader {
	if !a.cfg.S3.Enable {
		return nil
	}
	uploader, err := storage.NewS3Uploader(a.cfg.S3)
	if err != nil {
		a.logger.Warn("s3 mirror disabled", zap.Error(err))
		return nil
	}
	return uploader
}

// cleanCache POST /clean_cache  [auth]
func (a *App) cleanCache(c *gin.Context) {
	if a.redis == nil {
		response.OK(c, gin.H{"purged": 0})
		return
	}
	purged, err := middleware.PurgeHTTPCache(c.Request.Context(), a.redis.Raw())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"purged": purged})
}
