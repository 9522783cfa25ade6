package helpers

import (
	"sync"

	"github.com/andrescamacho/factorysim-go/internal/application/logging"
)

// LogEntry is one captured log line
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

// RecordingLogger captures log lines for assertions
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewRecordingLogger creates an empty recording logger
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

// Log implements logging.Logger
func (l *RecordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: message, Metadata: metadata})
}

// Entries returns a copy of everything logged so far
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry{}, l.entries...)
}

// Count returns how many entries have the given message
func (l *RecordingLogger) Count(message string) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Message == message {
			n++
		}
	}
	return n
}

var _ logging.Logger = (*RecordingLogger)(nil)
