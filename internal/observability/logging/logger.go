// Package logging provides structured logging utilities using the standard library's log/slog package.
// It offers helper functions for creating loggers with consistent configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// DefaultLogFile is the append-only log file used when LOG_FILE is not set.
const DefaultLogFile = "articles-parser.log"

// NewLogger creates a new structured logger with JSON output written to w.
// The log level can be controlled via the LOG_LEVEL environment variable.
// Supported levels: debug, info, warn, error
// Default level: info
func NewLogger(w io.Writer) *slog.Logger {
	level := levelFromEnv()
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		// Add source code location for error and warn levels
		AddSource: level <= slog.LevelWarn,
	})
	return slog.New(handler)
}

// NewTextLogger creates a new structured logger with human-readable text output.
// This is useful for local development and debugging.
func NewTextLogger(w io.Writer) *slog.Logger {
	level := levelFromEnv()
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	})
	return slog.New(handler)
}

// NewSinkLogger picks the handler for the sink opened from path: text for
// stderr ("-"), where a person is reading, and JSON for log files.
func NewSinkLogger(path string, w io.Writer) *slog.Logger {
	if path == "-" {
		return NewTextLogger(w)
	}
	return NewLogger(w)
}

// OpenSink opens the log destination named by path.
// "-" selects stderr; stdout is never used because it carries article output.
// Any other path is opened for appending and created if missing.
func OpenSink(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	if path == "" {
		path = DefaultLogFile
	}
	// #nosec G304 -- path comes from the operator's configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}

// WithRunID returns a logger tagged with a fresh run identifier so that
// entries appended to a shared log file can be grouped per invocation.
func WithRunID(logger *slog.Logger) *slog.Logger {
	return logger.With(slog.String("run_id", uuid.NewString()))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
