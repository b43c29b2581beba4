package testutil

import (
	"fmt"
	"sync"
)

// RecordingLogger captures log messages per level so tests can assert on
// them. Safe for concurrent use.
type RecordingLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{messages: make(map[string][]string)}
}

func (l *RecordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages[level] = append(l.messages[level], fmt.Sprintf("%s %v", msg, args))
}

func (l *RecordingLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg, args) }
func (l *RecordingLogger) Info(msg string, args ...any)  { l.record("INFO", msg, args) }
func (l *RecordingLogger) Warn(msg string, args ...any)  { l.record("WARN", msg, args) }
func (l *RecordingLogger) Error(msg string, args ...any) { l.record("ERROR", msg, args) }

// Warnings returns all messages logged at WARN level.
func (l *RecordingLogger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.messages["WARN"]...)
}
