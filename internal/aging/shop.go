package aging

import "github.com/osse101/GildedRose_Go/internal/domain"

// Shop holds a collection of items and ages them one day at a time.
// A Shop is not safe for concurrent use.
type Shop struct {
	items  []*domain.Item
	engine *Engine
}

// NewShop creates a shop over items using a default engine
func NewShop(items ...*domain.Item) *Shop {
	return NewShopWithEngine(NewEngine(), items...)
}

// NewShopWithEngine creates a shop that ages items with engine
func NewShopWithEngine(engine *Engine, items ...*domain.Item) *Shop {
	if items == nil {
		items = []*domain.Item{}
	}
	return &Shop{items: items, engine: engine}
}

// Items returns the held collection
func (s *Shop) Items() []*domain.Item {
	return s.items
}

// AdvanceOneDay ages every item in place and returns the held collection
func (s *Shop) AdvanceOneDay() []*domain.Item {
	return s.engine.AdvanceAll(s.items)
}
