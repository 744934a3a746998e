package tracing

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "articles-parser"

// GetTracer returns the tracer for creating spans.
// It is looked up from the current global provider on every call, so spans
// follow whichever provider InitProvider installed last.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// InitProvider installs an SDK tracer provider built from opts as the global
// provider and returns a function that flushes and shuts it down.
func InitProvider(opts ...sdktrace.TracerProviderOption) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}

// Setup installs the global tracer provider for a run. When export is set,
// finished spans are written as JSON to w; otherwise spans are recorded but
// not exported. The returned function flushes and shuts the provider down.
func Setup(export bool, w io.Writer) (func(context.Context) error, error) {
	if !export {
		return InitProvider(), nil
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create span exporter: %w", err)
	}
	return InitProvider(sdktrace.WithBatcher(exporter)), nil
}
