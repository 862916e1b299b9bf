// Package diagnostics receives human-readable content lint messages.
// Reporting never fails and never stops the caller.
package diagnostics

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/osse101/Materials_Go/internal/metrics"
)

// LogMsgDiagnostic is the slog message used for every reported diagnostic
const LogMsgDiagnostic = "Content diagnostic"

// Sink receives formatted diagnostic messages
type Sink interface {
	Reportf(format string, args ...any)
}

// LogSink writes diagnostics to a slog logger at warn level and counts them
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a sink writing to log, or to the default logger when log is nil
func NewLogSink(log *slog.Logger) *LogSink {
	if log == nil {
		log = slog.Default()
	}
	return &LogSink{log: log}
}

// Reportf logs one diagnostic
func (s *LogSink) Reportf(format string, args ...any) {
	metrics.DiagnosticsReported.Inc()
	s.log.Warn(LogMsgDiagnostic, "message", fmt.Sprintf(format, args...))
}

// Collector keeps every reported diagnostic in memory
type Collector struct {
	mu       sync.Mutex
	messages []string
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Reportf records one diagnostic
func (c *Collector) Reportf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, fmt.Sprintf(format, args...))
}

// Messages returns a copy of the recorded diagnostics in report order
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of recorded diagnostics
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Reset discards recorded diagnostics
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}

// Multi fans every diagnostic out to several sinks
type Multi []Sink

// Reportf forwards the diagnostic to every sink
func (m Multi) Reportf(format string, args ...any) {
	for _, s := range m {
		s.Reportf(format, args...)
	}
}
