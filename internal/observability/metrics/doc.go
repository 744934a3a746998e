// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all parser metrics including:
//   - Decoded article counts split by validation result
//   - Decode failures per format
//   - Source load failures and durations
//
// All metrics are automatically registered with the Prometheus default registry.
// The parser is a single-run command, so instead of serving /metrics it can dump
// the registry to a node-exporter textfile at exit.
//
// Example usage:
//
//	import "articles-parser/internal/observability/metrics"
//
//	func load(path string) {
//	    start := time.Now()
//	    _, err := os.ReadFile(path)
//	    metrics.RecordSourceLoad("file", time.Since(start), err)
//	}
package metrics
