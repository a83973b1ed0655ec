package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemState is the (sellIn, quality) pair tracked across a day
type ItemState struct {
	SellIn  int `json:"sell_in"`
	Quality int `json:"quality"`
}

// ItemChange records how one stock item moved during a day
type ItemChange struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Before   ItemState `json:"before"`
	After    ItemState `json:"after"`
}

// Changed reports whether the day altered the item
func (c ItemChange) Changed() bool {
	return c.Before != c.After
}

// AgingReport summarises one advanced day
type AgingReport struct {
	Day     int          `json:"day"`
	AgedAt  time.Time    `json:"aged_at"`
	Changes []ItemChange `json:"changes"`
}
