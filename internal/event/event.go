package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Inventory event types
const (
	InventoryAged Type = domain.EventTypeInventoryAged
	ItemStocked   Type = domain.EventTypeItemStocked
	ItemRemoved   Type = domain.EventTypeItemRemoved
)

// Typed event payloads for type safety

// InventoryAgedPayloadV1 is the typed payload for a completed aging day
type InventoryAgedPayloadV1 struct {
	Day          int       `json:"day"`
	ItemsAged    int       `json:"items_aged"`
	ItemsChanged int       `json:"items_changed"`
	AgedAt       time.Time `json:"aged_at"`
}

// ItemPayloadV1 is the typed payload for stock changes
type ItemPayloadV1 struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	SellIn    int    `json:"sell_in"`
	Quality   int    `json:"quality"`
	Timestamp int64  `json:"timestamp"`
}

// NewInventoryAgedEvent creates an event for an aging report
func NewInventoryAgedEvent(report *domain.AgingReport, trigger string) Event {
	changed := 0
	for _, c := range report.Changes {
		if c.Changed() {
			changed++
		}
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    InventoryAged,
		Payload: InventoryAgedPayloadV1{
			Day:          report.Day,
			ItemsAged:    len(report.Changes),
			ItemsChanged: changed,
			AgedAt:       report.AgedAt,
		},
		Metadata: map[string]interface{}{
			MetadataKeyTrigger: trigger,
		},
	}
}

// NewItemStockedEvent creates an event for a newly stocked item
func NewItemStockedEvent(item *domain.StockItem) Event {
	return newItemEvent(ItemStocked, item)
}

// NewItemRemovedEvent creates an event for an item taken out of stock
func NewItemRemovedEvent(item *domain.StockItem) Event {
	return newItemEvent(ItemRemoved, item)
}

func newItemEvent(t Type, item *domain.StockItem) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: ItemPayloadV1{
			ItemID:    item.ID.String(),
			Name:      item.Item.Name,
			Category:  item.Category.String(),
			SellIn:    item.Item.SellIn,
			Quality:   item.Item.Quality,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously in subscription order
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
