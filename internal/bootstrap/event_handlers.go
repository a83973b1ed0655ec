package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/sse"
)

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event-based Prometheus counters)
// - Event logger (debug log line per event)
// - SSE subscriber (live feed for connected clients), when hub is non-nil
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range []event.Type{event.InventoryAged, event.ItemStocked, event.ItemRemoved} {
		bus.Subscribe(t, logEvent)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	if hub != nil {
		sse.NewSubscriber(hub, bus).Subscribe()
	}

	return nil
}

func logEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventObserved,
		"type", evt.Type,
		"version", evt.Version,
		"trigger", evt.GetMetadataValue(event.MetadataKeyTrigger))
	return nil
}
