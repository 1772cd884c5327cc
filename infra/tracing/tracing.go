// Package tracing wraps factory creators in OpenTelemetry spans.
//
// Spans are produced through the global tracer provider unless a provider is
// passed explicitly. NewProvider with a LogExporter gives a provider that
// writes finished spans to the structured log.
package tracing

import (
	"cmp"
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kilianp07/genfactory/core/factory"
)

const (
	instrumentation = "github.com/kilianp07/genfactory"
	spanName        = "factory.create"
)

// Tracer returns the tracer used for creator spans. A nil provider selects
// the global one.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(instrumentation)
}

// Creator wraps c so each invocation runs inside a span tagged with key.
func Creator[B any](tracer trace.Tracer, key string, c factory.Creator[B]) factory.Creator[B] {
	if c == nil {
		return nil
	}
	return func() (B, error) {
		_, span := tracer.Start(context.Background(), spanName,
			trace.WithAttributes(attribute.String("factory.key", key)),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		inst, err := c()
		endSpan(span, err)
		return inst, err
	}
}

// Entries wraps every creator in entries.
func Entries[K cmp.Ordered, B any](tracer trace.Tracer, entries []factory.Entry[K, B]) []factory.Entry[K, B] {
	out := make([]factory.Entry[K, B], len(entries))
	for i, e := range entries {
		out[i] = factory.Entry[K, B]{Key: e.Key, Create: Creator(tracer, fmt.Sprint(e.Key), e.Create)}
	}
	return out
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
