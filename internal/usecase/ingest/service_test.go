package ingest

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"articles-parser/internal/infra/loader"
	"articles-parser/internal/observability/tracing"
	"articles-parser/internal/usecase/parse"
)

const newsAPIDoc = `{"status":"ok","totalResults":2,"articles":[` +
	`{"title":"One","description":"d1","url":"http://example.com/1","publishedAt":"2024-01-01T00:00:00Z"},` +
	`{"title":"Two","description":"d2","url":"http://example.com/2"}]}`

const simpleDoc = `{"title":"Solo","description":"ds","url":"http://example.com/s","publishedAt":"2024-02-02T00:00:00Z"}`

// stubLoader serves canned documents keyed by location.
type stubLoader struct {
	docs  map[string]string
	calls []string
}

func (l *stubLoader) Load(ctx context.Context, source loader.SourceKind, format parse.FormatKind, location string) (parse.Parser, error) {
	l.calls = append(l.calls, location)
	if err := loader.CheckCombination(source, format); err != nil {
		return parse.Parser{}, err
	}
	doc, ok := l.docs[location]
	if !ok {
		return parse.Parser{}, loader.ErrFileRead
	}
	return parse.New(format, doc), nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func threeInputs() []Input {
	return []Input{
		{Name: "newsapi-file", Source: loader.SourceFile, Format: parse.FormatNewsAPI, Location: "news"},
		{Name: "simple-file", Source: loader.SourceFile, Format: parse.FormatSimple, Location: "simple"},
		{Name: "newsapi-url", Source: loader.SourceURL, Format: parse.FormatNewsAPI, Location: "remote"},
	}
}

func TestService_Run_PrintsValidArticlesInOrder(t *testing.T) {
	l := &stubLoader{docs: map[string]string{"news": newsAPIDoc, "simple": simpleDoc, "remote": newsAPIDoc}}
	var out bytes.Buffer

	sum, err := NewService(l, &out, nil).Run(context.Background(), threeInputs())

	require.NoError(t, err)
	assert.Equal(t, Summary{Inputs: 3, Failed: 0, Articles: 3}, sum)
	assert.Equal(t, []string{"news", "simple", "remote"}, l.calls)

	printed := out.String()
	first := strings.Index(printed, "Title: One\n")
	solo := strings.Index(printed, "Title: Solo\n")
	last := strings.LastIndex(printed, "Title: One\n")
	assert.True(t, first >= 0 && first < solo && solo < last, "unexpected order:\n%s", printed)
	assert.NotContains(t, printed, "Title: Two")
	assert.Contains(t, printed, "URL: http://example.com/1\n\n")
}

func TestService_Run_SkipsFailedInputs(t *testing.T) {
	l := &stubLoader{docs: map[string]string{"simple": simpleDoc}}
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	sum, err := NewService(l, &out, logger).Run(context.Background(), threeInputs())

	require.NoError(t, err)
	assert.Equal(t, Summary{Inputs: 3, Failed: 2, Articles: 1}, sum)
	assert.Contains(t, out.String(), "Title: Solo")
	assert.Equal(t, 2, strings.Count(logs.String(), "error loading data from source"))
}

func TestService_Run_UnsupportedCombinationIsSkipped(t *testing.T) {
	l := &stubLoader{docs: map[string]string{"remote": simpleDoc}}
	inputs := []Input{{Name: "bad", Source: loader.SourceURL, Format: parse.FormatSimple, Location: "remote"}}

	sum, err := NewService(l, &bytes.Buffer{}, nil).Run(context.Background(), inputs)

	require.NoError(t, err)
	assert.Equal(t, 1, sum.Failed)
}

func TestService_Run_WriteErrorStops(t *testing.T) {
	l := &stubLoader{docs: map[string]string{"news": newsAPIDoc, "simple": simpleDoc, "remote": newsAPIDoc}}

	sum, err := NewService(l, failingWriter{}, nil).Run(context.Background(), threeInputs())

	require.Error(t, err)
	assert.Equal(t, 1, sum.Inputs)
	assert.Equal(t, []string{"news"}, l.calls)
}

func TestService_Run_CanceledContext(t *testing.T) {
	l := &stubLoader{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(l, &bytes.Buffer{}, nil).Run(ctx, threeInputs())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, l.calls)
}

func TestService_Run_RecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	shutdown := tracing.InitProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = shutdown(context.Background()) }()

	l := &stubLoader{docs: map[string]string{"news": newsAPIDoc}}
	_, err := NewService(l, &bytes.Buffer{}, nil).Run(context.Background(), threeInputs()[:2])
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "ingest.input", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.Int("articles.valid", 1))
	assert.Equal(t, codes.Error, spans[1].Status.Code)
}

func TestService_Run_WithRealLoader(t *testing.T) {
	dir := t.TempDir()
	newsPath := filepath.Join(dir, "newsapi.txt")
	require.NoError(t, os.WriteFile(newsPath, []byte(newsAPIDoc), 0o600))

	inputs := []Input{
		{Name: "newsapi-file", Source: loader.SourceFile, Format: parse.FormatNewsAPI, Location: newsPath},
		{Name: "missing", Source: loader.SourceFile, Format: parse.FormatSimple, Location: filepath.Join(dir, "nope.txt")},
	}
	var out bytes.Buffer

	sum, err := NewService(loader.New(nil, nil), &out, nil).Run(context.Background(), inputs)

	require.NoError(t, err)
	assert.Equal(t, Summary{Inputs: 2, Failed: 1, Articles: 1}, sum)
	assert.Equal(t, "Title: One\nDescription: d1\nPublished At: 2024-01-01T00:00:00Z\nURL: http://example.com/1\n\n", out.String())
}
