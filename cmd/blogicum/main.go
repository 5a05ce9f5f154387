package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"
	"github.com/redis/go-redis/v9"

	"github.com/blogicum/blogicum/config"
	"github.com/blogicum/blogicum/internal/app"
	"github.com/blogicum/blogicum/internal/cache"
	"github.com/blogicum/blogicum/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply database migrations on start")
	cfg       config.Config
	lg        *slog.Logger
)

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	ctx := context.Background()

	if *flMigrate {
		exitOnError(db.Migrate(ctx, cfg.Database.URL))
		lg.Info("migrations applied")
	}

	opt, err := cfg.Database.Options()
	exitOnError(err)

	dbc := pg.Connect(opt)
	if cfg.Database.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(lg))
		lg.Info("SQL query logging enabled")
	}

	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}
	defer dbc.Close()

	var redisClient *redis.Client
	if cfg.Cache.Enabled() {
		redisClient, err = cache.Connect(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		exitOnError(err)
		defer redisClient.Close()
	}

	service := app.New(cfg, dbc, redisClient, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
