package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/fo-weather-stations/internal/api/http"
	"github.com/i474232898/fo-weather-stations/internal/config"
	"github.com/i474232898/fo-weather-stations/internal/logging"
	"github.com/i474232898/fo-weather-stations/internal/metrics"
	"github.com/i474232898/fo-weather-stations/internal/scheduler"
	"github.com/i474232898/fo-weather-stations/internal/store"
	"github.com/i474232898/fo-weather-stations/internal/weather"
	"github.com/i474232898/fo-weather-stations/internal/weather/feed"
)

const appName = "fo-weather-stations"

// version is stamped via -ldflags at release builds.
var version = "dev"

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg.AppEnv, cfg.LogLevel, appName, version))

	// Shared HTTP client for outbound feed calls; the fetcher enforces the
	// per-request timeout.
	httpClient := &http.Client{}

	fetcher := feed.NewFetcher(httpClient, cfg.FeedURL, cfg.FetchTimeout)
	parser := feed.NewParser()

	// Record cache with the configured throttle window.
	cache := store.NewCache(fetcher, parser, cfg.RefreshInterval)

	// Core service orchestrating cache and projection.
	service := weather.NewService(cache, cfg.Stations, cfg.Units)

	// Scheduler that keeps station records warm in the background.
	sched := scheduler.New(cfg.Stations, cfg.SchedulerInterval, service)
	if err := sched.Start(); err != nil {
		slog.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": appName,
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("fiber server stopped", "error", err)
		}
	}()

	slog.Info("serving", "port", cfg.Port, "stations", len(cfg.Stations))

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("error during shutdown", "error", err)
	}
}
