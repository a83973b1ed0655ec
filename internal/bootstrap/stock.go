package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/osse101/GildedRose_Go/internal/aging"
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/stock"
)

// StockAdder is the slice of the inventory service seeding needs
type StockAdder interface {
	AddItem(ctx context.Context, name string, sellIn, quality int) (*domain.StockItem, error)
}

// NewEngine builds the aging engine, announcing legendary items when configured
func NewEngine(cfg *config.Config) *aging.Engine {
	var opts []aging.Option
	if cfg.LegendaryBattleCries {
		opts = append(opts, aging.WithAnnouncer(aging.NewBattleCryAnnouncer(rand.New(rand.NewSource(rand.Int63())))))
	}
	slog.Info(LogMsgEngineInitialized, "battle_cries", cfg.LegendaryBattleCries)
	return aging.NewEngine(opts...)
}

// SeedStock stocks the entries from path, or the default stock when the file is
// missing or empty. It returns the number of items stocked.
func SeedStock(ctx context.Context, svc StockAdder, path string) (int, error) {
	slog.Info(LogMsgSeedingStock, "path", path)

	entries, err := stock.LoadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedLoadStock, err)
	}
	if len(entries) == 0 {
		slog.Info(LogMsgUsingDefaultStock)
		entries = stock.DefaultEntries()
	}

	for i, e := range entries {
		if _, err := svc.AddItem(ctx, e.Name, e.SellIn, e.Quality); err != nil {
			return i, fmt.Errorf("%s %q: %w", ErrMsgFailedSeedItem, e.Name, err)
		}
	}

	slog.Info(LogMsgStockSeeded, "items", len(entries))
	return len(entries), nil
}
