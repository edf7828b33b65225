// Package app wires configuration, storage, middleware, and module routes
// into a runnable HTTP application.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sendikahub/core/internal/config"
	"github.com/sendikahub/core/internal/database"
	"github.com/sendikahub/core/internal/middleware"
	"github.com/sendikahub/core/internal/modules/auth"
	"github.com/sendikahub/core/internal/pkg/cron"
	"github.com/sendikahub/core/internal/pkg/jwt"
	pkgredis "github.com/sendikahub/core/internal/pkg/redis"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	mongo  *database.Mongo
	redis  *pkgredis.Client
	logger *zap.Logger
	sched  *cron.Scheduler
	cancel context.CancelFunc
}

// New initializes the application: config → Mongo → Redis → routes.
// Mongo must be reachable at startup: indexes and the seed admin depend on it.
// Redis is optional; without it rate limiting and response caching are off.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if cfg.JWTSecret != "" {
		jwt.SetSecret(cfg.JWTSecret)
	}

	mongo := database.New(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := mongo.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	if err := auth.NewService(db).EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	rc, err := pkgredis.Connect(cfg.RedisURL)
	if err != nil {
		logger.Warn("redis unavailable, rate limiting and response cache disabled", zap.Error(err))
		rc = nil
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(buildCORSConfig(cfg)))

	app := &App{cfg: cfg, router: router, mongo: mongo, redis: rc, logger: logger}

	bg, cancelBg := context.WithCancel(context.Background())
	app.cancel = cancelBg
	app.sched = cron.New()
	app.registerCronJobs(app.sched, db)
	app.sched.Start(bg)

	app.registerRoutes(db)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown stops background jobs and releases storage connections.
func (a *App) Shutdown(ctx context.Context) {
	a.cancel()
	if err := a.mongo.Close(ctx); err != nil {
		a.logger.Warn("mongo close", zap.Error(err))
	}
}
