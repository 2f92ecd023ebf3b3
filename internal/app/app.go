package app

import (
	"errors"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linkmoa/core/internal/config"
	"github.com/linkmoa/core/internal/database"
	"github.com/linkmoa/core/internal/middleware"
	pkgredis "github.com/linkmoa/core/internal/pkg/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	redis  *pkgredis.Client
	logger *zap.Logger
}

// New initializes the application: DB, optional Redis, middleware, routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	var rc *pkgredis.Client
	if cfg.RedisURL != "" {
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
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

	// The archive is consumed by browser extensions and local frontends, so
	// any origin is allowed.
	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc:  func(string) bool { return true },
	}))

	if rc != nil {
		router.Use(middleware.Idempotence(rc.Raw()))
	}

	app := &App{
		cfg:    cfg,
		router: router,
		db:     db,
		redis:  rc,
		logger: logger,
	}
	app.registerRoutes()

	return app, nil
}

// Addr returns the listen address, e.g. ":8000".
func (a *App) Addr() string {
	return fmt.Sprintf(":%d", a.cfg.Port)
}

// Router returns the HTTP handler.
func (a *App) Router() *gin.Engine { return a.router }

// DB returns the database handle.
func (a *App) DB() *gorm.DB { return a.db }

// Shutdown releases application resources.
func (a *App) Shutdown() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("redis close failed", zap.Error(err))
		}
	}
	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.logger.Warn("database close failed", zap.Error(err))
		}
	}
}
