package inventory

// Aging limits
const (
	// MaxAdvanceDays bounds a single AdvanceDays call
	MaxAdvanceDays = 365

	// DefaultReportHistorySize is used when a non-positive history size is given
	DefaultReportHistorySize = 30
)

// Log message constants
const (
	LogMsgItemStocked      = "Item stocked"
	LogMsgItemRemoved      = "Item removed"
	LogMsgDayAdvanced      = "Inventory aged one day"
	LogMsgDaysAdvanced     = "Inventory aged multiple days"
	LogMsgAdvanceCancelled = "Aging stopped early, context done"
)
