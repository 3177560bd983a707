// Package errors routes user-facing messages either to the console or to the
// TUI status line.
package errors

import (
	"sync"

	"github.com/cristianoliveira/artisan-ref/internal/colors"
)

// ErrorHandler is the interface for user-facing messages.
// Different implementations can handle them differently based on context.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console sink used by CLIHandler.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler prints messages with the colors package.
type CLIHandler struct {
	colors ColorOutput
	mu     sync.Mutex
	errors int
}

var _ ErrorHandler = (*CLIHandler)(nil)

func NewCLIHandler(out ColorOutput) *CLIHandler {
	return &CLIHandler{colors: out}
}

// consoleOutput sends messages to the colors package.
type consoleOutput struct{}

func (consoleOutput) Error(msgs ...string)   { colors.Error(msgs...) }
func (consoleOutput) Warning(msgs ...string) { colors.Warning(msgs...) }
func (consoleOutput) Info(msgs ...string)    { colors.Info(msgs...) }
func (consoleOutput) Success(msgs ...string) { colors.Success(msgs...) }

// NewDefaultCLIHandler creates a CLI handler printing to the console.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(consoleOutput{})
}

func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	h.errors++
	h.mu.Unlock()
	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.colors.Success(msg)
}

// Handle reports err, if any, and returns whether something was reported.
// Joined errors are reported one line each.
func (h *CLIHandler) Handle(err error) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			h.Handle(e)
		}
		return true
	}
	h.Error(err.Error())
	return true
}

// ErrorCount returns how many errors were reported so far.
func (h *CLIHandler) ErrorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errors
}
