package parse

import (
	"log/slog"

	"articles-parser/internal/domain/entity"
)

// Visitor processes a parser without the caller knowing which format it holds.
type Visitor interface {
	VisitNewsAPI(p Parser) []entity.Article
	VisitSimple(p Parser) []entity.Article
	VisitRSS(p Parser) []entity.Article
	// VisitUnknown receives parsers whose format has no dedicated method.
	VisitUnknown(p Parser) []entity.Article
}

// DecodeVisitor is the standard Visitor: every method decodes and validates
// through Decode, so its results are identical to Parser.Parse.
type DecodeVisitor struct {
	Logger *slog.Logger
}

// NewDecodeVisitor returns a DecodeVisitor reporting to logger.
func NewDecodeVisitor(logger *slog.Logger) *DecodeVisitor {
	return &DecodeVisitor{Logger: logger}
}

func (v *DecodeVisitor) VisitNewsAPI(p Parser) []entity.Article {
	return Decode(FormatNewsAPI, p.Text, v.Logger)
}

func (v *DecodeVisitor) VisitSimple(p Parser) []entity.Article {
	return Decode(FormatSimple, p.Text, v.Logger)
}

func (v *DecodeVisitor) VisitRSS(p Parser) []entity.Article {
	return Decode(FormatRSS, p.Text, v.Logger)
}

func (v *DecodeVisitor) VisitUnknown(p Parser) []entity.Article {
	return Decode(p.Format, p.Text, v.Logger)
}
