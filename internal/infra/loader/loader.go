package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"articles-parser/internal/observability/metrics"
	"articles-parser/internal/usecase/parse"
)

// Fetcher retrieves the body of a remote document.
// *fetcher.HTTPFetcher is the production implementation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Loader turns a location into a parser for the declared format.
type Loader struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// New creates a Loader that fetches remote documents with f.
func New(f Fetcher, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{fetcher: f, logger: logger}
}

// CheckCombination reports whether format may be loaded from source.
// Simple-format documents are only supported from files.
func CheckCombination(source SourceKind, format parse.FormatKind) error {
	if source == SourceURL && format == parse.FormatSimple {
		return fmt.Errorf("%w: %s from %s", ErrUnsupportedCombination, format, source)
	}
	return nil
}

// Load reads the text at location and wraps it in a parser for format.
//
// The source/format pair is checked before any I/O. File and network failures
// are returned wrapped; errors.Is distinguishes ErrFileRead from the fetcher's
// sentinel errors.
func (l *Loader) Load(ctx context.Context, source SourceKind, format parse.FormatKind, location string) (parse.Parser, error) {
	if err := CheckCombination(source, format); err != nil {
		return parse.Parser{}, err
	}

	start := time.Now()
	text, err := l.read(ctx, source, location)
	metrics.RecordSourceLoad(source.String(), time.Since(start), err)
	if err != nil {
		return parse.Parser{}, err
	}

	l.logger.Debug("source loaded",
		slog.String("source", source.String()),
		slog.String("format", format.String()),
		slog.Int("bytes", len(text)))

	return parse.New(format, text), nil
}

func (l *Loader) read(ctx context.Context, source SourceKind, location string) (string, error) {
	switch source {
	case SourceFile:
		return ReadFile(location)
	case SourceURL:
		if l.fetcher == nil {
			return "", fmt.Errorf("%w: no fetcher configured for %s", ErrUnknownSource, source)
		}
		return l.fetcher.Fetch(ctx, location)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownSource, source)
	}
}

// ReadFile returns the whole content of path with its line breaks as written.
func ReadFile(path string) (string, error) {
	// #nosec G304 -- path comes from the operator's configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFileRead, path, err)
	}
	return string(data), nil
}
