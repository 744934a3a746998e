// Package parse turns raw feed text into validated articles.
// It decodes NewsAPI envelopes, single Simple-format articles and RSS/Atom feeds,
// keeps the articles that carry every required field, and reports the rest to a logger.
package parse

import "errors"

// Sentinel errors for decode failures. They never reach callers of Parse;
// they are attached to the error-level log entry instead.
var (
	// ErrDecodeFailed indicates that the text is not a valid document of the declared format.
	ErrDecodeFailed = errors.New("failed to decode document")

	// ErrUnknownFormat indicates a parser tagged with a format that has no decoder.
	ErrUnknownFormat = errors.New("unknown format")
)
