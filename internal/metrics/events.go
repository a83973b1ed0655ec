package metrics

import (
	"context"

	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all inventory events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.InventoryAged,
		event.ItemStocked,
		event.ItemRemoved,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.InventoryAged:
		trigger, _ := evt.GetMetadataValue(event.MetadataKeyTrigger).(string)
		DaysAdvanced.WithLabelValues(trigger).Inc()

	case event.ItemStocked, event.ItemRemoved:
		payload, err := event.DecodePayload[event.ItemPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		if evt.Type == event.ItemStocked {
			ItemsStocked.WithLabelValues(payload.Category).Inc()
		} else {
			ItemsRemoved.WithLabelValues(payload.Category).Inc()
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
