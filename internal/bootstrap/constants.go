package bootstrap

import "time"

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/dead_letter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Stock Seeding
// =============================================================================

const (
	LogMsgSeedingStock      = "Seeding stock"
	LogMsgStockSeeded       = "Stock seeded"
	LogMsgUsingDefaultStock = "No stock entries found, using default stock"

	ErrMsgFailedLoadStock = "failed to load stock file"
	ErrMsgFailedSeedItem  = "failed to seed item"
)

// =============================================================================
// Aging Engine
// =============================================================================

const (
	LogMsgEngineInitialized = "Aging engine initialized"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgEventObserved              = "Event observed"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownWorkers        = "Shutting down workers..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgNightlyWorkerFailed        = "Nightly aging worker shutdown failed"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
