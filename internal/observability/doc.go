// Package observability groups the parser's structured logging, Prometheus
// metrics and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: slog constructors, the log file sink and the per-run id
//   - metrics: parse and load counters, optionally dumped to a textfile
//   - tracing: the tracer used for per-input spans
//
// Example usage:
//
//	import (
//	    "articles-parser/internal/observability/logging"
//	    "articles-parser/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger(os.Stderr)
//	    logger.Info("run started")
//
//	    metrics.RecordArticle("newsapi", true)
//	}
package observability
