package event

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// DeadLetterSchemaVersion changes whenever DeadLetterEntry changes shape.
const DeadLetterSchemaVersion = "1.1"

// DeadLetterWriter appends events that exhausted their retries to a JSONL file.
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
	now  func() time.Time
}

type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Type          Type      `json:"type"`
	Trigger       string    `json:"trigger,omitempty"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
	Event         Event     `json:"event"`
}

// NewDeadLetterWriter opens path for appending, creating parent directories.
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dead-letter directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter file: %w", err)
	}
	return &DeadLetterWriter{file: f, enc: json.NewEncoder(f), now: time.Now}, nil
}

func (dlw *DeadLetterWriter) Write(evt Event, attempts int, lastError error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     dlw.now().UTC(),
		Type:          evt.Type,
		Attempts:      attempts,
		Event:         evt,
	}
	if trigger, ok := evt.GetMetadataValue(MetadataKeyTrigger).(string); ok {
		entry.Trigger = trigger
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	logger.Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"attempts", attempts,
		"error", entry.LastError)

	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	return dlw.enc.Encode(entry)
}

func (dlw *DeadLetterWriter) Close() error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	return dlw.file.Close()
}
