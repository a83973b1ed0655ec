package metrics

import "github.com/osse101/GildedRose_Go/internal/domain"

// RecordInventory refreshes the stock gauges from a full snapshot
func RecordInventory(items []domain.StockItem) {
	counts := make(map[domain.Category]int)
	qualitySums := make(map[domain.Category]int)
	expired := 0

	for _, it := range items {
		counts[it.Category]++
		qualitySums[it.Category] += it.Item.Quality
		if it.Category != domain.CategoryLegendary && it.Item.SellIn < 0 {
			expired++
		}
	}

	for _, c := range domain.Categories() {
		label := c.String()
		InventoryItems.WithLabelValues(label).Set(float64(counts[c]))
		if counts[c] == 0 {
			InventoryQuality.WithLabelValues(label).Set(0)
			continue
		}
		InventoryQuality.WithLabelValues(label).Set(float64(qualitySums[c]) / float64(counts[c]))
	}
	ItemsExpired.Set(float64(expired))
}
