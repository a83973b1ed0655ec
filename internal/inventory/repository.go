package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Repository defines the interface for stock data access.
// Implementations hand out copies; callers never share memory with the store.
type Repository interface {
	Save(ctx context.Context, item *domain.StockItem) error
	Get(ctx context.Context, id uuid.UUID) (*domain.StockItem, error)
	List(ctx context.Context) ([]domain.StockItem, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll swaps the whole stock for items, keeping their order
	ReplaceAll(ctx context.Context, items []domain.StockItem) error

	Ping(ctx context.Context) error
}
