package aging

import (
	"context"
	"math/rand"
	"sync"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// Announcer receives legendary items as they are skipped by the aging rules.
// Implementations must not modify the item.
type Announcer interface {
	Announce(ctx context.Context, item *domain.Item)
}

// NopAnnouncer discards announcements
type NopAnnouncer struct{}

func (NopAnnouncer) Announce(context.Context, *domain.Item) {}

// BattleCryAnnouncer logs one of two battle cries, picked at random
type BattleCryAnnouncer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewBattleCryAnnouncer creates an announcer drawing from rng.
// A nil rng uses a time-seeded source.
func NewBattleCryAnnouncer(rng *rand.Rand) *BattleCryAnnouncer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &BattleCryAnnouncer{rng: rng}
}

// Announce logs the battle cry for item
func (a *BattleCryAnnouncer) Announce(ctx context.Context, item *domain.Item) {
	logger.FromContext(ctx).Info(LogMsgLegendaryBattleCry,
		"item", item.Name,
		"cry", a.Cry())
}

// Cry draws the next battle cry
func (a *BattleCryAnnouncer) Cry() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.rng.Float64() > 0.5 {
		return BattleCryInsects
	}
	return BattleCryFire
}
