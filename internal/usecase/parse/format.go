package parse

import (
	"fmt"
	"strings"
)

// FormatKind tells how raw text is shaped.
type FormatKind int

const (
	// FormatNewsAPI is a NewsAPI envelope holding many articles.
	FormatNewsAPI FormatKind = iota + 1
	// FormatSimple is a single article object with no envelope.
	FormatSimple
	// FormatRSS is an RSS, Atom or JSON Feed document.
	FormatRSS
)

// String returns the lower-case name used in logs, metrics and config files.
func (f FormatKind) String() string {
	switch f {
	case FormatNewsAPI:
		return "newsapi"
	case FormatSimple:
		return "simple"
	case FormatRSS:
		return "rss"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormatKind maps a config name such as "newsapi" to its FormatKind.
func ParseFormatKind(s string) (FormatKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newsapi":
		return FormatNewsAPI, nil
	case "simple":
		return FormatSimple, nil
	case "rss", "atom":
		return FormatRSS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
