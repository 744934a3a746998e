// Package metrics provides centralized Prometheus metrics for the parser.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Parse metrics track how decoded articles are filtered
var (
	// ArticlesParsedTotal counts decoded articles by format and validation result
	ArticlesParsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_parsed_total",
			Help: "Total number of decoded articles by validation result",
		},
		[]string{"format", "result"}, // result: valid, invalid
	)

	// DecodeFailuresTotal counts documents that could not be decoded
	DecodeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parse_decode_failures_total",
			Help: "Total number of documents that failed to decode",
		},
		[]string{"format"},
	)
)

// Source metrics track raw text retrieval
var (
	// SourceLoadFailuresTotal counts failed file reads and network fetches
	SourceLoadFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_load_failures_total",
			Help: "Total number of failed source loads",
		},
		[]string{"source"},
	)

	// SourceLoadDuration measures time to read a file or fetch a URL
	SourceLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "source_load_duration_seconds",
			Help:    "Time taken to load raw text from a source",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		},
		[]string{"source"},
	)
)

// RecordArticle records one decoded article for the given format.
func RecordArticle(format string, valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	ArticlesParsedTotal.WithLabelValues(format, result).Inc()
}

// RecordDecodeFailure records a document of the given format that failed to decode.
func RecordDecodeFailure(format string) {
	DecodeFailuresTotal.WithLabelValues(format).Inc()
}

// RecordSourceLoad records the outcome and duration of a source load.
func RecordSourceLoad(source string, duration time.Duration, err error) {
	SourceLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		SourceLoadFailuresTotal.WithLabelValues(source).Inc()
	}
}

// WriteTextfile writes every metric in the default registry to path using the
// node-exporter textfile collector format. An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
