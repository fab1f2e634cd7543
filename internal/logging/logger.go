// Package logging wraps charmbracelet/log with the level handling and
// context plumbing shared by the inferus commands.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultMu     sync.Mutex
	defaultLogger *log.Logger
)

// New creates a stderr logger at the given level.
// Valid levels: "debug", "info", "warn", "error". Anything else means info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w at the given level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "inferus",
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name to a log.Level, case-insensitively.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// Default returns the package-level logger, creating an info logger on first use.
func Default() *log.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultLogger = logger
}

// SetLevel updates the level of the default logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
