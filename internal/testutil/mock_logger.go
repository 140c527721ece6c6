// Package testutil provides shared test doubles for the GHS label service.
package testutil

import (
	"sync"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
)

// MockLogger implements logging.Logger and records every entry.  Children
// created by With and Named share the parent's record so assertions can be
// made on the root instance.
type MockLogger struct {
	store  *logStore
	name   string
	fields []logging.Field
}

type logStore struct {
	mu       sync.Mutex
	messages []LogMessage
}

// LogMessage represents a single log entry captured by MockLogger.
type LogMessage struct {
	Level   string
	Logger  string
	Message string
	Fields  []logging.Field
}

// Field returns the value of the named field and whether it was present.
func (m LogMessage) Field(key string) (interface{}, bool) {
	for _, f := range m.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// NewMockLogger creates a new MockLogger instance.
func NewMockLogger() *MockLogger {
	return &MockLogger{store: &logStore{}}
}

func (m *MockLogger) log(level, msg string, fields []logging.Field) {
	all := make([]logging.Field, 0, len(m.fields)+len(fields))
	all = append(all, m.fields...)
	all = append(all, fields...)

	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.messages = append(m.store.messages, LogMessage{
		Level:   level,
		Logger:  m.name,
		Message: msg,
		Fields:  all,
	})
}

func (m *MockLogger) Debug(msg string, fields ...logging.Field) { m.log("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...logging.Field)  { m.log("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...logging.Field)  { m.log("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...logging.Field) { m.log("error", msg, fields) }
func (m *MockLogger) Fatal(msg string, fields ...logging.Field) { m.log("fatal", msg, fields) }

func (m *MockLogger) With(fields ...logging.Field) logging.Logger {
	child := &MockLogger{store: m.store, name: m.name}
	child.fields = append(append(child.fields, m.fields...), fields...)
	return child
}

func (m *MockLogger) Named(name string) logging.Logger {
	full := name
	if m.name != "" {
		full = m.name + "." + name
	}
	return &MockLogger{store: m.store, name: full, fields: m.fields}
}

// GetMessages returns a copy of all logged messages.
func (m *MockLogger) GetMessages() []LogMessage {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	out := make([]LogMessage, len(m.store.messages))
	copy(out, m.store.messages)
	return out
}

// Clear removes all logged messages.
func (m *MockLogger) Clear() {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.messages = m.store.messages[:0]
}

// HasMessage reports whether an entry with the given level and message exists.
func (m *MockLogger) HasMessage(level, msg string) bool {
	for _, logged := range m.GetMessages() {
		if logged.Level == level && logged.Message == msg {
			return true
		}
	}
	return false
}

// Count returns the number of entries logged at level.
func (m *MockLogger) Count(level string) int {
	n := 0
	for _, logged := range m.GetMessages() {
		if logged.Level == level {
			n++
		}
	}
	return n
}
