package tracing

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kilianp07/genfactory/core/logger"
)

// LogExporter writes finished spans as structured log lines.
type LogExporter struct {
	log logger.Logger
}

var _ sdktrace.SpanExporter = (*LogExporter)(nil)

// NewLogExporter returns an exporter logging through log. A nil logger
// discards spans.
func NewLogExporter(log logger.Logger) *LogExporter {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &LogExporter{log: log}
}

func (e *LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := map[string]any{
			"span":        s.Name(),
			"trace_id":    s.SpanContext().TraceID().String(),
			"span_id":     s.SpanContext().SpanID().String(),
			"duration_ms": float64(s.EndTime().Sub(s.StartTime()).Microseconds()) / 1000,
			"status":      s.Status().Code.String(),
		}
		for _, attr := range s.Attributes() {
			fields[string(attr.Key)] = attr.Value.Emit()
		}
		if d := s.Status().Description; d != "" {
			fields["error"] = d
		}
		e.log.Infow("span finished", fields)
	}
	return nil
}

func (e *LogExporter) Shutdown(context.Context) error { return nil }

// NewProvider returns a tracer provider batching finished spans into exp.
// The caller owns the provider and must shut it down to flush pending spans.
func NewProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
}
