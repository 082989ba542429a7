// Package logging wraps charmbracelet/log with a process-wide default
// logger, level handling and context attachment.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // One shared logger for the process is intentional
var (
	defaultMu     sync.Mutex
	defaultLogger *log.Logger
)

// New builds a logger writing to stderr without timestamps or caller
// reporting, set to the given level: "debug", "info", "warn" (or
// "warning"), "error".
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(levelOf(level))
	return logger
}

// levelOf maps a level name to a charmbracelet/log level. Empty and
// unknown names fall back to info.
func levelOf(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the shared default logger, creating it at info level on
// first use.
func Default() *log.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault replaces the shared default logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetLevel updates the level of the shared default logger.
func SetLevel(level string) {
	Default().SetLevel(levelOf(level))
}
