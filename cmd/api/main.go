// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/admin"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/auth"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/billing"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/blog"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/client"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/config"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/enquiry"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/health"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/letter"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/middleware"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/quickcontact"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/server"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"host", cfg.Database.Host,
		"name", cfg.Database.Name,
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redis.Enabled() {
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	} else {
		logger.Info("redis not configured, rate limiter uses local buckets")
	}

	registry := auth.NewRegistry()

	userRepo := user.NewRepository(db.DB)
	authSvc := auth.NewService(userRepo, registry, cfg.Auth.SessionTTL)
	authHandler := auth.NewHandler(authSvc)

	blogHandler := blog.NewHandler(blog.NewService(blog.NewRepository(db.DB)))
	billHandler := billing.NewHandler(
		billing.NewService(billing.NewRepository(db.DB)),
	)
	letterHandler := letter.NewHandler(
		letter.NewService(letter.NewRepository(db.DB)),
	)
	clientHandler := client.NewHandler(
		client.NewService(client.NewRepository(db.DB)),
	)
	enquiryHandler := enquiry.NewHandler(
		enquiry.NewService(enquiry.NewRepository(db.DB)),
	)
	contactHandler := quickcontact.NewHandler(
		quickcontact.NewService(quickcontact.NewRepository(db.DB)),
	)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Repository: admin.NewRepository(db.DB),
		DBStats:    db.Stats,
	})

	healthHandler := health.NewHandler(db, db)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.Per(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))
	if telemetry != nil {
		router.Use(middleware.Tracing(telemetry.Tracer))
	}

	healthHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)
	blogHandler.RegisterRoutes(router)
	billHandler.RegisterRoutes(router)
	letterHandler.RegisterRoutes(router)
	clientHandler.RegisterRoutes(router)
	enquiryHandler.RegisterRoutes(router)
	contactHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
