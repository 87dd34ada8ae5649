package trace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/gofhir/contentvalidator/model"
)

const (
	instrumentationName = "github.com/gofhir/contentvalidator/trace"

	// SpanName is the name of the span recorded per traced document.
	SpanName = "ccda.document.presence"
)

// SpanHook records category presence as OpenTelemetry span attributes, one
// short span per traced document.
type SpanHook struct {
	tracer oteltrace.Tracer
}

// NewSpanHook creates a SpanHook. A nil provider uses the global one.
func NewSpanHook(tp oteltrace.TracerProvider) *SpanHook {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &SpanHook{tracer: tp.Tracer(instrumentationName)}
}

// Trace records a span with a "ccda.role" attribute and one boolean
// "ccda.category.<name>" attribute per category.
func (h *SpanHook) Trace(ctx context.Context, role Role, doc *model.Document) {
	if doc == nil {
		return
	}
	cats := doc.Categories()
	attrs := make([]attribute.KeyValue, 0, len(cats)+1)
	attrs = append(attrs, attribute.String("ccda.role", string(role)))
	for _, c := range cats {
		attrs = append(attrs, attribute.Bool("ccda.category."+string(c.Category), c.Present))
	}

	_, span := h.tracer.Start(ctx, SpanName, oteltrace.WithAttributes(attrs...))
	span.End()
}
