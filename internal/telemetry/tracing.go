package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "jsxdom"

// Tracer starts render spans.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer resolves a tracer from the global provider. An empty name
// uses "jsxdom".
func NewTracer(name string) *Tracer {
	if name == "" {
		name = defaultTracerName
	}
	return &Tracer{tracer: otel.Tracer(name)}
}

// NewTracerFrom uses an explicit provider.
func NewTracerFrom(tp trace.TracerProvider, name string) *Tracer {
	if name == "" {
		name = defaultTracerName
	}
	return &Tracer{tracer: tp.Tracer(name)}
}

// StartRender starts a span for rendering page.
func (t *Tracer) StartRender(ctx context.Context, page, requestID string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "jsxdom.render "+page,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("jsxdom.page", page),
			attribute.String("jsxdom.request_id", requestID),
		),
	)
}

// End records err on span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
