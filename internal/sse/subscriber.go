package sse

import (
	"context"

	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the inventory event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.InventoryAged, s.handleInventoryAged)
	s.bus.Subscribe(event.ItemStocked, s.handleStockChange)
	s.bus.Subscribe(event.ItemRemoved, s.handleStockChange)

	logger.Info(LogMsgSubscriberRegistered,
		"types", []string{
			string(event.InventoryAged),
			string(event.ItemStocked),
			string(event.ItemRemoved),
		})
}

func (s *Subscriber) handleInventoryAged(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.InventoryAgedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	trigger, _ := evt.GetMetadataValue(event.MetadataKeyTrigger).(string)
	s.hub.Broadcast(EventTypeInventoryAged, DayAgedPayload{
		Day:          payload.Day,
		ItemsAged:    payload.ItemsAged,
		ItemsChanged: payload.ItemsChanged,
		AgedAt:       payload.AgedAt,
		Trigger:      trigger,
	})

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast,
		"event_type", EventTypeInventoryAged,
		"day", payload.Day)
	return nil
}

func (s *Subscriber) handleStockChange(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ItemPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), StockChangePayload{
		ItemID:   payload.ItemID,
		Name:     payload.Name,
		Category: payload.Category,
		SellIn:   payload.SellIn,
		Quality:  payload.Quality,
	})

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast,
		"event_type", evt.Type,
		"item_id", payload.ItemID)
	return nil
}
