package parse

import (
	"log/slog"

	"articles-parser/internal/domain/entity"
)

// Parser is raw feed text tagged with the format it is expected to decode as.
// It is an immutable value; all behaviour is keyed by Format.
type Parser struct {
	Format FormatKind
	Text   string
}

// New returns a parser for text in the given format.
func New(format FormatKind, text string) Parser {
	return Parser{Format: format, Text: text}
}

// NewNewsParser returns a parser for a NewsAPI envelope.
func NewNewsParser(text string) Parser {
	return New(FormatNewsAPI, text)
}

// NewSimpleParser returns a parser for a single Simple-format article.
func NewSimpleParser(text string) Parser {
	return New(FormatSimple, text)
}

// NewRSSParser returns a parser for an RSS, Atom or JSON feed.
func NewRSSParser(text string) Parser {
	return New(FormatRSS, text)
}

// Parse decodes the text and returns its valid articles.
// The result is never nil; decode failures and invalid articles are reported to logger.
func (p Parser) Parse(logger *slog.Logger) []entity.Article {
	return Decode(p.Format, p.Text, logger)
}

// Accept hands the parser to the visitor method matching its format.
func (p Parser) Accept(v Visitor) []entity.Article {
	switch p.Format {
	case FormatNewsAPI:
		return v.VisitNewsAPI(p)
	case FormatSimple:
		return v.VisitSimple(p)
	case FormatRSS:
		return v.VisitRSS(p)
	default:
		return v.VisitUnknown(p)
	}
}
