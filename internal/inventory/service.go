package inventory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/GildedRose_Go/internal/aging"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
)

// Service defines the inventory feature interface
type Service interface {
	AddItem(ctx context.Context, name string, sellIn, quality int) (*domain.StockItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.StockItem, error)
	ListItems(ctx context.Context, category *domain.Category) ([]domain.StockItem, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error

	AdvanceDay(ctx context.Context) (*domain.AgingReport, error)
	AdvanceDays(ctx context.Context, days int) ([]*domain.AgingReport, error)

	GetReport(ctx context.Context, day int) (*domain.AgingReport, error)
	RecentReports(ctx context.Context) []*domain.AgingReport
	CurrentDay(ctx context.Context) int

	CheckHealth(ctx context.Context) error
}

// Publisher delivers inventory events
type Publisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

type triggerKey struct{}

// WithTrigger records what caused an aging run, carried on the inventory.aged event
func WithTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, triggerKey{}, trigger)
}

// TriggerFromContext returns the recorded trigger, defaulting to a manual run
func TriggerFromContext(ctx context.Context) string {
	if t, ok := ctx.Value(triggerKey{}).(string); ok && t != "" {
		return t
	}
	return event.TriggerManual
}

type service struct {
	repo      Repository
	engine    *aging.Engine
	publisher Publisher
	history   *lru.Cache[int, *domain.AgingReport]
	now       func() time.Time

	// mu serializes every stock mutation so a day advance never races a stock change
	mu  sync.Mutex
	day atomic.Int64
}

// NewService creates a new inventory service.
// publisher may be nil when no events are wanted.
func NewService(repo Repository, engine *aging.Engine, publisher Publisher, historySize int) (Service, error) {
	if engine == nil {
		engine = aging.NewEngine()
	}
	if historySize <= 0 {
		historySize = DefaultReportHistorySize
	}

	history, err := lru.New[int, *domain.AgingReport](historySize)
	if err != nil {
		return nil, fmt.Errorf("failed to create report history: %w", err)
	}

	return &service{
		repo:      repo,
		engine:    engine,
		publisher: publisher,
		history:   history,
		now:       time.Now,
	}, nil
}

func (s *service) AddItem(ctx context.Context, name string, sellIn, quality int) (*domain.StockItem, error) {
	item := &domain.StockItem{
		ID:       uuid.New(),
		Item:     *domain.NewItem(name, sellIn, quality),
		Category: s.engine.Classify(name),
		AddedAt:  s.now().UTC(),
	}

	s.mu.Lock()
	err := s.repo.Save(ctx, item)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgItemStocked,
		"item_id", item.ID,
		"name", item.Item.Name,
		"category", item.Category.String())

	s.publish(ctx, event.NewItemStockedEvent(item))
	s.refreshGauges(ctx)
	return item, nil
}

func (s *service) GetItem(ctx context.Context, id uuid.UUID) (*domain.StockItem, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) ListItems(ctx context.Context, category *domain.Category) ([]domain.StockItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	if category == nil {
		return items, nil
	}

	filtered := make([]domain.StockItem, 0, len(items))
	for _, it := range items {
		if it.Category == *category {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

func (s *service) RemoveItem(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	item, err := s.repo.Get(ctx, id)
	if err == nil {
		err = s.repo.Delete(ctx, id)
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgItemRemoved, "item_id", id, "name", item.Item.Name)

	s.publish(ctx, event.NewItemRemovedEvent(item))
	s.refreshGauges(ctx)
	return nil
}

func (s *service) AdvanceDay(ctx context.Context) (*domain.AgingReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.advanceLocked(ctx)
}

func (s *service) AdvanceDays(ctx context.Context, days int) ([]*domain.AgingReport, error) {
	if days < 1 || days > MaxAdvanceDays {
		return nil, fmt.Errorf("%w: %d (must be 1-%d)", domain.ErrInvalidDays, days, MaxAdvanceDays)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reports := make([]*domain.AgingReport, 0, days)
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			logger.FromContext(ctx).Warn(LogMsgAdvanceCancelled, "completed", i, "requested", days)
			return reports, err
		}
		report, err := s.advanceLocked(ctx)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}

	if days > 1 {
		logger.FromContext(ctx).Info(LogMsgDaysAdvanced, "days", days, "day", s.day.Load())
	}
	return reports, nil
}

// advanceLocked ages all stock by one day. Caller holds s.mu.
func (s *service) advanceLocked(ctx context.Context) (*domain.AgingReport, error) {
	start := time.Now()

	stock, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}

	items := make([]*domain.Item, len(stock))
	changes := make([]domain.ItemChange, len(stock))
	for i := range stock {
		items[i] = &stock[i].Item
		changes[i] = domain.ItemChange{
			ID:       stock[i].ID,
			Name:     stock[i].Item.Name,
			Category: stock[i].Category,
			Before:   stateOf(stock[i].Item),
		}
	}

	s.engine.AdvanceAllContext(ctx, items)

	changed := 0
	for i := range stock {
		changes[i].After = stateOf(stock[i].Item)
		if changes[i].Changed() {
			changed++
		}
		if stock[i].Category != domain.CategoryLegendary {
			metrics.ItemsAged.WithLabelValues(stock[i].Category.String()).Inc()
		}
	}

	if err := s.repo.ReplaceAll(ctx, stock); err != nil {
		return nil, fmt.Errorf("failed to store aged stock: %w", err)
	}

	report := &domain.AgingReport{
		Day:     int(s.day.Add(1)),
		AgedAt:  s.now().UTC(),
		Changes: changes,
	}
	s.history.Add(report.Day, report)

	metrics.AgingDuration.Observe(time.Since(start).Seconds())
	metrics.RecordInventory(stock)

	trigger := TriggerFromContext(ctx)
	logger.FromContext(ctx).Info(LogMsgDayAdvanced,
		"day", report.Day,
		"items", len(stock),
		"changed", changed,
		"trigger", trigger)

	s.publish(ctx, event.NewInventoryAgedEvent(report, trigger))
	return report, nil
}

func (s *service) GetReport(ctx context.Context, day int) (*domain.AgingReport, error) {
	// Peek keeps eviction in day order
	report, ok := s.history.Peek(day)
	if !ok {
		return nil, fmt.Errorf("%w: day %d", domain.ErrReportNotFound, day)
	}
	return report, nil
}

func (s *service) RecentReports(ctx context.Context) []*domain.AgingReport {
	reports := s.history.Values()
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Day > reports[j].Day
	})
	return reports
}

func (s *service) CurrentDay(ctx context.Context) int {
	return int(s.day.Load())
}

func (s *service) CheckHealth(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}

func (s *service) refreshGauges(ctx context.Context) {
	stock, err := s.repo.List(ctx)
	if err != nil {
		return
	}
	metrics.RecordInventory(stock)
}

func stateOf(item domain.Item) domain.ItemState {
	return domain.ItemState{SellIn: item.SellIn, Quality: item.Quality}
}
