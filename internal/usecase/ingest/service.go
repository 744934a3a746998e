// Package ingest runs the configured inputs through the loader and parser
// and writes every valid article to an output stream.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"articles-parser/internal/infra/loader"
	"articles-parser/internal/observability/tracing"
	"articles-parser/internal/usecase/parse"
)

// Input is one document to ingest.
type Input struct {
	Name     string
	Source   loader.SourceKind
	Format   parse.FormatKind
	Location string
}

// Loader resolves an input into a parser. *loader.Loader implements it.
type Loader interface {
	Load(ctx context.Context, source loader.SourceKind, format parse.FormatKind, location string) (parse.Parser, error)
}

// Summary counts what a run did.
type Summary struct {
	Inputs   int
	Failed   int
	Articles int
}

// Service processes inputs strictly one after another.
type Service struct {
	loader  Loader
	visitor parse.Visitor
	out     io.Writer
	logger  *slog.Logger
}

// NewService creates a Service printing articles to out and reporting to logger.
// Parsers are processed through a parse.DecodeVisitor sharing the same logger.
func NewService(l Loader, out io.Writer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		loader:  l,
		visitor: parse.NewDecodeVisitor(logger),
		out:     out,
		logger:  logger,
	}
}

// Run loads, parses and prints each input in order.
//
// A load failure is logged and the input skipped; it does not stop the run.
// Run only returns an error when writing to the output fails or ctx is done.
func (s *Service) Run(ctx context.Context, inputs []Input) (Summary, error) {
	var sum Summary
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Inputs++

		n, err := s.runInput(ctx, in)
		sum.Articles += n
		if err == nil {
			continue
		}
		if isWriteError(err) {
			return sum, err
		}
		sum.Failed++
	}

	s.logger.Info("ingest finished",
		slog.Int("inputs", sum.Inputs),
		slog.Int("failed", sum.Failed),
		slog.Int("articles", sum.Articles))
	return sum, nil
}

func (s *Service) runInput(ctx context.Context, in Input) (int, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "ingest.input")
	defer span.End()
	span.SetAttributes(
		attribute.String("input.name", in.Name),
		attribute.String("source.kind", in.Source.String()),
		attribute.String("format.kind", in.Format.String()),
	)

	logger := s.logger.With(
		slog.String("input", in.Name),
		slog.String("source", in.Source.String()),
		slog.String("format", in.Format.String()))

	p, err := s.loader.Load(ctx, in.Source, in.Format, in.Location)
	if err != nil {
		logger.Error("error loading data from source", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return 0, err
	}

	articles := p.Accept(s.visitor)
	span.SetAttributes(attribute.Int("articles.valid", len(articles)))

	for i, a := range articles {
		if _, err := fmt.Fprintln(s.out, a.String()); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "write failed")
			return i, &writeError{err: err}
		}
	}

	logger.Info("input processed", slog.Int("articles", len(articles)))
	return len(articles), nil
}

type writeError struct {
	err error
}

func (e *writeError) Error() string { return "write article: " + e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

func isWriteError(err error) bool {
	var wErr *writeError
	return errors.As(err, &wErr)
}
