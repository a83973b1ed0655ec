package server

import (
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// windowCounter counts hits per key inside a fixed window that restarts once it has elapsed.
type windowCounter struct {
	counts map[string]int
	start  time.Time
}

func newWindowCounter(now time.Time) windowCounter {
	return windowCounter{counts: make(map[string]int), start: now}
}

func (c *windowCounter) incr(key string, now time.Time) int {
	if now.Sub(c.start) > DetectorWindow {
		c.counts = make(map[string]int)
		c.start = now
	}
	c.counts[key]++
	return c.counts[key]
}

func (c *windowCounter) get(key string) int {
	return c.counts[key]
}

// SuspiciousActivityDetector tracks failed API key attempts and request rate per client IP.
type SuspiciousActivityDetector struct {
	mu         sync.Mutex
	failedAuth windowCounter
	requests   windowCounter
	now        func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetectorAt(time.Now)
}

func newDetectorAt(now func() time.Time) *SuspiciousActivityDetector {
	start := now()
	return &SuspiciousActivityDetector{
		failedAuth: newWindowCounter(start),
		requests:   newWindowCounter(start),
		now:        now,
	}
}

// RecordFailedAuth counts a rejected key and raises an alert once an IP crosses the threshold.
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	count := s.failedAuth.incr(ip, s.now())
	s.mu.Unlock()

	if count >= FailedAuthAlertCount {
		logger.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRequest reports whether ip is still under the per-window request limit.
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	count := s.requests.incr(ip, s.now())
	s.mu.Unlock()

	if count <= MaxRequestsPerWindow {
		return true
	}
	if count%HighRateLogEveryRequest == 0 {
		logger.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

func (s *SuspiciousActivityDetector) failedAuthCount(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failedAuth.get(ip)
}

func (s *SuspiciousActivityDetector) requestCount(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests.get(ip)
}
