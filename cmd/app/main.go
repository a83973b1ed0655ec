package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GildedRose_Go/internal/bootstrap"
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/scheduler"
	"github.com/osse101/GildedRose_Go/internal/server"
	"github.com/osse101/GildedRose_Go/internal/sse"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// @title Gilded Rose Inventory API
// @version 1.0
// @description Stock management and daily aging for the Gilded Rose inn.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	slog.Info("Starting Gilded Rose inventory service",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port)

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}
	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bus, hub); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	engine := bootstrap.NewEngine(cfg)
	svc, err := inventory.NewService(inventory.NewMemoryRepository(), engine, publisher, cfg.ReportHistorySize)
	if err != nil {
		slog.Error("Failed to create inventory service", "error", err)
		os.Exit(1)
	}

	if _, err := bootstrap.SeedStock(context.Background(), svc, cfg.StockFile); err != nil {
		slog.Error("Failed to seed stock", "error", err)
		os.Exit(1)
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	if cfg.AgingInterval > 0 {
		sched.Schedule(cfg.AgingInterval, worker.NewAgingJob(svc, event.TriggerScheduled))
		slog.Info("Interval aging enabled", "interval", cfg.AgingInterval)
	}

	nightly := worker.NewNightlyAgingWorker(svc, cfg.AgingLocation(), cfg.AgingResetHour)
	nightly.Start()

	srv := server.NewServer(cfg.Port, server.RouterConfig{
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Service:        svc,
		Hub:            hub,
		DayTrigger:     nightly,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	slog.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		SSEHub:             hub,
		Scheduler:          sched,
		NightlyWorker:      nightly,
		Pool:               pool,
		ResilientPublisher: publisher,
	})
}
