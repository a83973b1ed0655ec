package aging

import (
	"context"
	"strings"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// State is the part of an item that changes from one day to the next
type State struct {
	SellIn  int
	Quality int
}

// Engine provides pure aging logic (no storage or clock dependencies)
type Engine struct {
	announcer Announcer
}

// Option configures an Engine
type Option func(*Engine)

// WithAnnouncer routes legendary item diagnostics to a
func WithAnnouncer(a Announcer) Option {
	return func(e *Engine) {
		if a != nil {
			e.announcer = a
		}
	}
}

// NewEngine creates a new aging engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{announcer: NopAnnouncer{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Classify picks the aging category for an item name.
// Exact names win over the Conjured prefix; anything else ages as a normal item.
func (e *Engine) Classify(name string) domain.Category {
	switch {
	case name == domain.ItemNameAgedBrie:
		return domain.CategoryAgedBrie
	case name == domain.ItemNameBackstagePass:
		return domain.CategoryBackstagePass
	case name == domain.ItemNameSulfuras:
		return domain.CategoryLegendary
	case strings.HasPrefix(name, domain.ItemPrefixConjured):
		return domain.CategoryConjured
	default:
		return domain.CategoryNormal
	}
}

// Step computes the state one day after s for the given category
func (e *Engine) Step(category domain.Category, s State) State {
	switch category {
	case domain.CategoryAgedBrie:
		return stepAgedBrie(s)
	case domain.CategoryBackstagePass:
		return stepBackstagePass(s)
	case domain.CategoryLegendary:
		return s
	case domain.CategoryConjured:
		return stepConjured(s)
	default:
		return stepNormal(s)
	}
}

// Advance ages a single item by one day in place
func (e *Engine) Advance(item *domain.Item) {
	e.advance(context.Background(), item)
}

// AdvanceAll ages every item by one day in place and returns the same slice
func (e *Engine) AdvanceAll(items []*domain.Item) []*domain.Item {
	return e.AdvanceAllContext(context.Background(), items)
}

// AdvanceAllContext is AdvanceAll with a context for the announcer
func (e *Engine) AdvanceAllContext(ctx context.Context, items []*domain.Item) []*domain.Item {
	for _, item := range items {
		e.advance(ctx, item)
	}
	return items
}

func (e *Engine) advance(ctx context.Context, item *domain.Item) {
	if item == nil {
		return
	}

	category := e.Classify(item.Name)
	if category == domain.CategoryLegendary {
		e.announcer.Announce(ctx, item)
		return
	}

	next := e.Step(category, State{SellIn: item.SellIn, Quality: item.Quality})
	item.SellIn = next.SellIn
	item.Quality = next.Quality
}
