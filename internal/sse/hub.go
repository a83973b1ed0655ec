package sse

import (
	"bytes"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// Event is one message on the live feed.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected subscriber. A nil filter receives every event type.
type Client struct {
	ID           string
	EventChannel chan Event
	filter       map[string]struct{}
}

func (c *Client) wants(eventType string) bool {
	if c.filter == nil {
		return true
	}
	_, ok := c.filter[eventType]
	return ok
}

// Hub fans events out to registered clients from a single loop.
// Registration is synchronous; only delivery goes through the loop.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	stopped bool

	events   chan Event
	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	now      func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		events:   make(chan Event, BroadcastBufferSize),
		shutdown: make(chan struct{}),
		now:      time.Now,
	}
}

func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends delivery and closes every client channel. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		h.stopped = true
		for id, client := range h.clients {
			close(client.EventChannel)
			delete(h.clients, id)
		}
	})
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case evt := <-h.events:
			h.deliver(evt)
		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) deliver(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if !client.wants(evt.Type) {
			continue
		}
		// slow clients miss events
		select {
		case client.EventChannel <- evt:
		default:
		}
	}
}

// Register adds a client interested in eventTypes, or all types when empty.
// It returns nil once the hub is stopped.
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.filter = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			client.filter[t] = struct{}{}
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return nil
	}
	h.clients[client.ID] = client
	return client
}

func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.EventChannel)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event for delivery. It never blocks; a full queue drops the event.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}

	select {
	case h.events <- evt:
	default:
		logger.Warn(LogMsgBroadcastDropped, "event_type", eventType)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt as an id/event/data frame.
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(evt.ID) + len(evt.Type) + 24)
	buf.WriteString("id: ")
	buf.WriteString(evt.ID)
	buf.WriteString("\nevent: ")
	buf.WriteString(evt.Type)
	buf.WriteString("\ndata: ")
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
