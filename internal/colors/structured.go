package colors

import (
	"sync/atomic"

	clog "github.com/charmbracelet/log"
)

var structuredLoggingEnabled atomic.Bool

func init() {
	structuredLoggingEnabled.Store(true)
}

// StructuredLogLevel represents log level for structured logs.
type StructuredLogLevel string

const (
	LevelDebug StructuredLogLevel = "debug"
	LevelInfo  StructuredLogLevel = "info"
	LevelWarn  StructuredLogLevel = "warn"
	LevelError StructuredLogLevel = "error"
)

// DisableStructuredLogging disables structured logging output.
// The TUI turns it off so JSON lines do not corrupt the screen.
func DisableStructuredLogging() {
	structuredLoggingEnabled.Store(false)
}

// EnableStructuredLogging enables structured logging output.
func EnableStructuredLogging() {
	structuredLoggingEnabled.Store(true)
}

// StructuredLog writes a JSON log entry to stderr. Entries are only written in
// debug mode.
func StructuredLog(level StructuredLogLevel, component, action, status string, err error, fields map[string]any) {
	if !DebugEnabled() || !structuredLoggingEnabled.Load() {
		return
	}
	_, _, errOut := current()

	l := clog.NewWithOptions(errOut, clog.Options{
		ReportTimestamp: true,
		Formatter:       clog.JSONFormatter,
		Level:           clog.DebugLevel,
	})
	kv := []any{"component", component, "action", action, "status", status}
	if err != nil {
		kv = append(kv, "error", err.Error())
	}
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	l.Log(toClogLevel(level), action, kv...)
}

func toClogLevel(level StructuredLogLevel) clog.Level {
	switch level {
	case LevelDebug:
		return clog.DebugLevel
	case LevelWarn:
		return clog.WarnLevel
	case LevelError:
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

// StructuredDebug logs a structured debug entry.
func StructuredDebug(component, action, status string, err error, fields map[string]any) {
	StructuredLog(LevelDebug, component, action, status, err, fields)
}

// StructuredInfo logs a structured info entry.
func StructuredInfo(component, action, status string, err error, fields map[string]any) {
	StructuredLog(LevelInfo, component, action, status, err, fields)
}

// StructuredWarn logs a structured warning entry.
func StructuredWarn(component, action, status string, err error, fields map[string]any) {
	StructuredLog(LevelWarn, component, action, status, err, fields)
}

// StructuredError logs a structured error entry.
func StructuredError(component, action, status string, err error, fields map[string]any) {
	StructuredLog(LevelError, component, action, status, err, fields)
}
