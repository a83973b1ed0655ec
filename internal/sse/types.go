package sse

import "time"

// DayAgedPayload is the SSE payload for a completed aging day
type DayAgedPayload struct {
	Day          int       `json:"day"`
	ItemsAged    int       `json:"items_aged"`
	ItemsChanged int       `json:"items_changed"`
	AgedAt       time.Time `json:"aged_at"`
	Trigger      string    `json:"trigger,omitempty"` // nightly, scheduled or manual
}

// StockChangePayload is the SSE payload for an item entering or leaving stock
type StockChangePayload struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	SellIn   int    `json:"sell_in"`
	Quality  int    `json:"quality"`
}

// ConnectedPayload is sent to a client right after it connects
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
}
