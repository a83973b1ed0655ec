package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

type memoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.StockItem
	order []uuid.UUID
}

// NewMemoryRepository creates an in-process stock store that keeps insertion order
func NewMemoryRepository() Repository {
	return &memoryRepository{
		items: make(map[uuid.UUID]domain.StockItem),
	}
}

func (r *memoryRepository) Save(ctx context.Context, item *domain.StockItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = *item
	return nil
}

func (r *memoryRepository) Get(ctx context.Context, id uuid.UUID) (*domain.StockItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return &item, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]domain.StockItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.StockItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryRepository) ReplaceAll(ctx context.Context, items []domain.StockItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[uuid.UUID]domain.StockItem, len(items))
	r.order = make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, dup := r.items[item.ID]; !dup {
			r.order = append(r.order, item.ID)
		}
		r.items[item.ID] = item
	}
	return nil
}

func (r *memoryRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
