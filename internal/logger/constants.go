package logger

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)
