package worker

import (
	"context"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
)

// Ager advances the shop's inventory by one day
type Ager interface {
	AdvanceDay(ctx context.Context) (*domain.AgingReport, error)
}

// AgingJob is a pool job that ages the inventory once
type AgingJob struct {
	ager    Ager
	trigger string
}

// NewAgingJob creates a job that records trigger on the resulting aging event
func NewAgingJob(ager Ager, trigger string) *AgingJob {
	return &AgingJob{ager: ager, trigger: trigger}
}

// Process implements Job
func (j *AgingJob) Process(ctx context.Context) error {
	_, err := j.ager.AdvanceDay(inventory.WithTrigger(ctx, j.trigger))
	return err
}
