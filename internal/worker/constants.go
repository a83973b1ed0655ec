package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job skipped"
)

// ============================================================================
// Log Messages - Nightly Aging Worker
// ============================================================================

// Log messages for nightly aging worker operations
const (
	LogMsgNightlyAgingStarting      = "Nightly aging starting"
	LogMsgNightlyAgingCompleted     = "Nightly aging completed"
	LogMsgNightlyAgingFailed        = "Nightly aging failed"
	LogMsgNightlyAgingStandby       = "Nightly aging standby, will re-check before run"
	LogMsgNightlyAgingApproach      = "Nightly aging scheduled"
	LogMsgNightlyAgingManualTrigger = "Nightly aging manually triggered"
	LogMsgNightlyAgingShuttingDown  = "Shutting down nightly aging worker"
	LogMsgNightlyAgingShutdownDone  = "Nightly aging worker shutdown complete"
	LogMsgNightlyAgingShutdownSlow  = "Nightly aging worker shutdown timeout, a run may still be in progress"
)

// ============================================================================
// Nightly scheduling
// ============================================================================

// Two-stage timer windows
const (
	// StandbyThreshold is how far out a run must be before the worker sleeps in standby
	StandbyThreshold = time.Hour

	// ApproachLead is how long before a run the standby timer wakes up
	ApproachLead = 45 * time.Minute

	// EarlyFireTolerance is how early a timer may fire before it is treated as jitter
	EarlyFireTolerance = 10 * time.Second

	// LateFireWindow: a remaining wait above this means the run is due now
	LateFireWindow = 23 * time.Hour
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
