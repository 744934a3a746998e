// Package logging provides structured logging utilities.
//
// This package wraps the standard library's log/slog package with helper functions
// for the logging patterns used by the parser.
//
// Key features:
//   - JSON and text output formats
//   - Append-only log file sink, keeping stdout free for article output
//   - Per-run identifiers
//   - Configurable log levels
//
// Example usage:
//
//	import "articles-parser/internal/observability/logging"
//
//	func main() {
//	    sink, err := logging.OpenSink(logging.DefaultLogFile)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer sink.Close()
//	    logger := logging.WithRunID(logging.NewLogger(sink))
//	    logger.Info("parser started")
//	}
package logging
