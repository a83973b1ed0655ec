package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/scheduler"
	"github.com/osse101/GildedRose_Go/internal/server"
	"github.com/osse101/GildedRose_Go/internal/sse"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	SSEHub             *sse.Hub
	Scheduler          *scheduler.Scheduler
	NightlyWorker      *worker.NightlyAgingWorker
	Pool               *worker.Pool
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests), then the SSE hub so open streams end
// 2. Aging triggers and the worker pool (no new day advances)
// 3. Event publisher (flush pending events to ensure consistency)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}
	if components.SSEHub != nil {
		components.SSEHub.Stop()
	}

	slog.Info(LogMsgShuttingDownWorkers)
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.NightlyWorker != nil {
		if err := components.NightlyWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgNightlyWorkerFailed, "error", err)
		}
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}

	// Shutdown resilient publisher last to flush pending events
	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
