package config

// Default configuration values
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "gildedrose"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultStockFile         = "configs/stock.yaml"
	DefaultDeadLetterPath    = "logs/dead_letter.jsonl"
	DefaultReportHistorySize = 30

	DefaultAgingResetHour      = 0
	DefaultAgingUTCOffsetHours = 0

	DefaultWorkerCount     = 1
	DefaultWorkerQueueSize = 10
)
