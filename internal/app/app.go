package app

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blogicum/blogicum/config"
	"github.com/blogicum/blogicum/internal/blog"
	"github.com/blogicum/blogicum/internal/cache"
	"github.com/blogicum/blogicum/internal/db"
	"github.com/blogicum/blogicum/internal/rest"
	"github.com/blogicum/blogicum/internal/rpc"
	"github.com/blogicum/blogicum/internal/site"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

const (
	rpcPath      = "/rpc/"
	adminRPCPath = "/rpc/admin/"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

// New wires the application. A nil redisClient disables the page cache.
func New(cfg config.Config, dbConnect *pg.DB, redisClient *redis.Client, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	manager := blog.NewManager(database, logger)
	admin := blog.NewAdmin(database, logger)

	if redisClient != nil {
		pageCache := cache.New(redisClient)
		manager.WithCache(pageCache, cfg.Cache.EntryTTL())
		admin.WithCache(pageCache)
	}

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   newRouter(cfg, manager, admin, logger),
		Config: cfg,
	}
}

func newRouter(cfg config.Config, manager *blog.Manager, admin *blog.Admin, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger)))
	e.Use(middleware.Recover())

	site.NewHandler(manager, logger).RegisterRoutes(e)

	api := rest.NewBlogHandler(manager, admin, logger)
	api.RegisterRoutes(e)

	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	if cfg.Admin.Token == "" {
		logger.Warn("admin token is not configured, admin API disabled")
		return e
	}

	keyAuth := middleware.KeyAuth(func(key string, _ echo.Context) (bool, error) {
		return subtle.ConstantTimeCompare([]byte(key), []byte(cfg.Admin.Token)) == 1, nil
	})

	api.RegisterAdminRoutes(e.Group(rest.AdminPrefix, keyAuth))
	e.Any(adminRPCPath, echo.WrapHandler(rpc.NewAdmin(logger, admin)), keyAuth)

	return e
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
			}

			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Any("error", v.Error),
			)
			return nil
		},
	}
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "service started", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
