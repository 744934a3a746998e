// Package loader resolves a (source kind, format kind) pair and a location into a parser.
// It reads raw text from a local file or a remote URL. Unlike decode failures,
// which the parse package swallows, every read or fetch failure is returned to the caller.
package loader

import "errors"

// Sentinel errors for load operations.
var (
	// ErrUnsupportedCombination indicates a source/format pair that cannot be loaded,
	// such as a Simple-format document fetched from a URL.
	ErrUnsupportedCombination = errors.New("unsupported source and format combination")

	// ErrFileRead indicates that a local file could not be opened or read.
	ErrFileRead = errors.New("failed to read file")

	// ErrUnknownSource indicates a source kind with no reader.
	ErrUnknownSource = errors.New("unknown source kind")
)
