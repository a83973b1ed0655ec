package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

type retryEntry struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps an event Bus with background retries and a dead-letter file
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// PublishWithRetry publishes once and hands failures to the retry worker.
// It never returns an error: undeliverable events end up in the dead-letter file.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := rp.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	rp.enqueue(retryEntry{event: evt, attempt: 1, lastErr: err})
}

// Publish implements Bus
func (rp *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	rp.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the inner bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

func (rp *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-rp.shutdown:
		rp.writeDeadLetter(entry)
		return
	default:
	}

	select {
	case rp.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		rp.writeDeadLetter(entry)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case entry := <-rp.retryQueue:
			rp.retry(entry, true)
		case <-rp.shutdown:
			rp.drain()
			return
		}
	}
}

// retry makes one more attempt for entry, waiting out the backoff unless shutting down
func (rp *ResilientPublisher) retry(entry retryEntry, wait bool) {
	if wait {
		timer := time.NewTimer(CalculateRetryDelay(rp.retryDelay, entry.attempt))
		select {
		case <-timer.C:
		case <-rp.shutdown:
			timer.Stop()
		}
	}

	err := rp.bus.Publish(context.Background(), entry.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
		return
	}

	entry.lastErr = err
	if entry.attempt >= rp.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempt)
		rp.writeDeadLetter(entry)
		return
	}

	logger.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempt, "error", err)
	entry.attempt++

	select {
	case <-rp.shutdown:
		rp.writeDeadLetter(entry)
	default:
		rp.enqueue(entry)
	}
}

// drain makes a final immediate attempt for everything still queued
func (rp *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			drained++
			if err := rp.bus.Publish(context.Background(), entry.event); err != nil {
				entry.lastErr = err
				rp.writeDeadLetter(entry)
			}
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if rp.deadLetter == nil {
		return
	}
	if err := rp.deadLetter.Write(entry.event, entry.attempt, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker after draining the queue
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.closeOnce.Do(func() {
		close(rp.shutdown)
	})

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	if rp.deadLetter != nil {
		return rp.deadLetter.Close()
	}
	return nil
}
