package domain

import (
	"time"

	"github.com/google/uuid"
)

// Quality bounds for every non-legendary item
const (
	MinQuality = 0
	MaxQuality = 50
)

// Item is a single line of stock that ages once per simulated day
type Item struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// NewItem creates an item with its initial sell-in and quality
func NewItem(name string, sellIn, quality int) *Item {
	return &Item{
		Name:    name,
		SellIn:  sellIn,
		Quality: quality,
	}
}

// StockItem is an item held by the shop's inventory
type StockItem struct {
	ID       uuid.UUID `json:"id"`
	Item     Item      `json:"item"`
	Category Category  `json:"category"`
	AddedAt  time.Time `json:"added_at"`
}
