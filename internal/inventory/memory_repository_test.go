package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func newStockItem(name string, sellIn, quality int) *domain.StockItem {
	return &domain.StockItem{
		ID:   uuid.New(),
		Item: *domain.NewItem(name, sellIn, quality),
	}
}

func TestMemoryRepository_SaveGetList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := newStockItem("+5 Dexterity Vest", 10, 20)
	second := newStockItem("Aged Brie", 2, 0)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *got)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestMemoryRepository_SaveExistingKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := newStockItem("a", 1, 1)
	second := newStockItem("b", 1, 1)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	first.Item.Quality = 9
	require.NoError(t, repo.Save(ctx, first))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, 9, items[0].Item.Quality)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	item := newStockItem("Elixir of the Mongoose", 5, 7)
	require.NoError(t, repo.Save(ctx, item))

	item.Item.Quality = 0
	got, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Item.Quality, "mutating the saved pointer must not reach the store")

	got.Item.Quality = 1
	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, items[0].Item.Quality)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	a, b, c := newStockItem("a", 1, 1), newStockItem("b", 1, 1), newStockItem("c", 1, 1)
	for _, it := range []*domain.StockItem{a, b, c} {
		require.NoError(t, repo.Save(ctx, it))
	}

	require.NoError(t, repo.Delete(ctx, b.ID))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, c.ID, items[1].ID)

	err = repo.Delete(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = repo.Get(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestMemoryRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	old := newStockItem("old", 1, 1)
	require.NoError(t, repo.Save(ctx, old))

	fresh := []domain.StockItem{*newStockItem("x", 0, 0), *newStockItem("y", 0, 0)}
	require.NoError(t, repo.ReplaceAll(ctx, fresh))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, items)

	_, err = repo.Get(ctx, old.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewMemoryRepository()

	assert.ErrorIs(t, repo.Save(ctx, newStockItem("a", 1, 1)), context.Canceled)
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Ping(ctx), context.Canceled)
	assert.NoError(t, repo.Ping(context.Background()))
}
