// Package leaktest checks that tests leave no goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultTimeout bounds how long Check waits for goroutines to wind down
const DefaultTimeout = 2 * time.Second

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before  int
	timeout time.Duration
	t       testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	return &GoroutineChecker{
		before:  runtime.NumGoroutine(),
		timeout: DefaultTimeout,
		t:       t,
	}
}

// Check polls until at most tolerance extra goroutines remain, failing the test on timeout
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.timeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and verifies every goroutine it started has exited
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
