package stock

// Stock file limits
const (
	MaxStockFileSize = 1 << 20
)

// Log message constants
const (
	LogMsgStockLoaded      = "Stock file loaded"
	LogMsgStockFileMissing = "Stock file not found, starting empty"
)
