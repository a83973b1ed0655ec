package aging_bench

import (
	"context"
	"fmt"
	"testing"

	"github.com/osse101/GildedRose_Go/internal/aging"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/stock"
)

// --- Stubs (Zero-overhead publisher for benchmarking) ---

type StubPublisher struct{}

func (StubPublisher) PublishWithRetry(context.Context, event.Event) {}

// mixedStock repeats the default stock until it holds n items
func mixedStock(n int) []*domain.Item {
	defaults := stock.DefaultEntries()
	items := make([]*domain.Item, 0, n)
	for i := 0; i < n; i++ {
		e := defaults[i%len(defaults)]
		items = append(items, domain.NewItem(e.Name, e.SellIn, e.Quality))
	}
	return items
}

// BenchmarkEngine_AdvanceAll measures one pure aging pass over a mixed stock.
func BenchmarkEngine_AdvanceAll(b *testing.B) {
	for _, size := range []int{10, 1000, 100000} {
		b.Run(fmt.Sprintf("items=%d", size), func(b *testing.B) {
			engine := aging.NewEngine()
			items := mixedStock(size)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				engine.AdvanceAll(items)
			}
		})
	}
}

// BenchmarkEngine_Classify measures name classification for each category.
func BenchmarkEngine_Classify(b *testing.B) {
	engine := aging.NewEngine()
	names := []string{
		domain.ItemNameAgedBrie,
		domain.ItemNameBackstagePass,
		domain.ItemNameSulfuras,
		"Conjured Mana Cake",
		"+5 Dexterity Vest",
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Classify(names[i%len(names)])
	}
}

// BenchmarkService_AdvanceDay includes repository copies, reporting and metrics.
func BenchmarkService_AdvanceDay(b *testing.B) {
	svc, err := inventory.NewService(inventory.NewMemoryRepository(), nil, StubPublisher{}, 0)
	if err != nil {
		b.Fatalf("NewService failed: %v", err)
	}

	ctx := context.Background()
	for _, e := range stock.DefaultEntries() {
		for j := 0; j < 100; j++ {
			if _, err := svc.AddItem(ctx, e.Name, e.SellIn, e.Quality); err != nil {
				b.Fatalf("AddItem failed: %v", err)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.AdvanceDay(ctx); err != nil {
			b.Fatalf("AdvanceDay failed: %v", err)
		}
	}
}
