package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// NightlyAgingWorker ages the inventory once a day at a fixed wall-clock hour
type NightlyAgingWorker struct {
	ager     Ager
	location *time.Location
	hour     int
	now      func() time.Time

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewNightlyAgingWorker creates a worker firing at hour:00 in location
func NewNightlyAgingWorker(ager Ager, location *time.Location, hour int) *NightlyAgingWorker {
	if location == nil {
		location = time.UTC
	}
	return &NightlyAgingWorker{
		ager:     ager,
		location: location,
		hour:     hour,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first run
func (w *NightlyAgingWorker) Start() {
	w.scheduleNext()
}

// scheduleNext arms the timer for the next run
func (w *NightlyAgingWorker) scheduleNext() {
	duration := w.timeUntilNextRun()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	select {
	case <-w.shutdown:
		w.mu.Unlock()
		return
	default:
	}
	if w.timer != nil {
		w.timer.Stop()
	}

	// Stage 1: sleep until shortly before the run to avoid acting on a drifted long timer
	if duration > StandbyThreshold {
		waitDuration := duration - ApproachLead
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		w.mu.Unlock()

		log.Info(LogMsgNightlyAgingStandby, "next_check_at", w.now().UTC().Add(waitDuration))
		return
	}

	// Stage 2: final approach
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Fired early: wait out the remainder
		rem := w.timeUntilNextRun()
		if rem > EarlyFireTolerance && rem < LateFireWindow {
			w.scheduleNext()
			return
		}

		w.execute()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info(LogMsgNightlyAgingApproach, "next_run_at", w.now().UTC().Add(duration))
}

// execute runs one nightly aging in a tracked goroutine
func (w *NightlyAgingWorker) execute() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_, _ = w.run(context.Background(), event.TriggerNightly)
	}()
}

func (w *NightlyAgingWorker) run(ctx context.Context, trigger string) (*domain.AgingReport, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgNightlyAgingStarting, "trigger", trigger)

	report, err := w.ager.AdvanceDay(inventory.WithTrigger(ctx, trigger))
	if err != nil {
		log.Error(LogMsgNightlyAgingFailed, "trigger", trigger, "error", err)
		return nil, err
	}

	log.Info(LogMsgNightlyAgingCompleted, "day", report.Day, "items", len(report.Changes))
	return report, nil
}

// TriggerNow runs an aging day immediately without disturbing the schedule
func (w *NightlyAgingWorker) TriggerNow(ctx context.Context) (*domain.AgingReport, error) {
	logger.FromContext(ctx).Info(LogMsgNightlyAgingManualTrigger)

	w.wg.Add(1)
	defer w.wg.Done()
	return w.run(ctx, event.TriggerManual)
}

// Shutdown cancels the pending timer and waits for an in-flight run
func (w *NightlyAgingWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgNightlyAgingShuttingDown)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgNightlyAgingShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgNightlyAgingShutdownSlow)
		return ctx.Err()
	}
}

func (w *NightlyAgingWorker) timeUntilNextRun() time.Duration {
	return timeUntilNextRun(w.now(), w.location, w.hour)
}

// timeUntilNextRun returns the wait from now until the next hour:00 in location
func timeUntilNextRun(now time.Time, location *time.Location, hour int) time.Duration {
	local := now.In(location)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}
