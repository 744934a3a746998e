// Package tracing provides OpenTelemetry tracing integration.
//
// The parser creates one span per configured input covering load, decode and
// validation. Exporters are supplied by the caller as TracerProvider options.
//
// Example usage:
//
//	import "articles-parser/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.InitProvider()
//	    defer shutdown(context.Background())
//	}
//
//	func processInput(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "ingest.input")
//	    defer span.End()
//	    // ... load and parse ...
//	}
package tracing
