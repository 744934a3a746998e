package loader

import (
	"fmt"
	"strings"
)

// SourceKind tells where raw text comes from.
type SourceKind int

const (
	// SourceFile reads raw text from a local file.
	SourceFile SourceKind = iota + 1
	// SourceURL fetches raw text over HTTP.
	SourceURL
)

// String returns the lower-case name used in logs, metrics and config files.
func (s SourceKind) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceURL:
		return "url"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// ParseSourceKind maps a config name such as "file" to its SourceKind.
func ParseSourceKind(s string) (SourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return SourceFile, nil
	case "url":
		return SourceURL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSource, s)
	}
}
