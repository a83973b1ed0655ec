package sse

import (
	"time"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

const (
	// BroadcastBufferSize bounds events waiting for the fan-out loop.
	BroadcastBufferSize = 100
	// ClientEventBuffer is per client; a client this far behind misses events.
	ClientEventBuffer = 50

	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE. Inventory events keep their bus names.
const (
	EventTypeInventoryAged = domain.EventTypeInventoryAged
	EventTypeItemStocked   = domain.EventTypeItemStocked
	EventTypeItemRemoved   = domain.EventTypeItemRemoved

	// EventTypeConnected is sent once when a client connects
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected      = "SSE client connected"
	LogMsgClientDisconnected   = "SSE client disconnected"
	LogMsgEventBroadcast       = "Broadcasting SSE event"
	LogMsgBroadcastDropped     = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgInvalidPayload       = "Invalid event payload for SSE"
	LogMsgSubscriberRegistered = "SSE subscriber registered for event types"
)
