package scheduler

// Log message constants
const (
	LogMsgInvalidInterval = "Ignoring schedule with non-positive interval"
	LogMsgTickSkipped     = "Scheduled job skipped, worker queue full"
)
