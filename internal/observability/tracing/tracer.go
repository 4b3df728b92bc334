package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pagedlist/pkg/pagedlist"
)

// TracerName is the instrumentation scope used for every span.
const TracerName = "pagedlist"

// GetTracer returns the tracer for creating spans.
// It is resolved from the global provider on every call so that a provider
// installed after start-up (or in tests) takes effect.
func GetTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartSpan starts an internal span as a child of the span in ctx.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// SetPageAttributes records the position of a page on span.
func SetPageAttributes(span trace.Span, m pagedlist.MetadataReader) {
	span.SetAttributes(
		attribute.Int("page.number", m.PageNumber()),
		attribute.Int("page.size", m.PageSize()),
		attribute.Int("page.total_item_count", m.TotalItemCount()),
		attribute.Int("page.count", m.PageCount()),
		attribute.Int("page.first_item", m.FirstItemOnPage()),
		attribute.Int("page.last_item", m.LastItemOnPage()),
		attribute.Bool("page.out_of_range", m.PageCount() > 0 && m.PageNumber() > m.PageCount()),
	)
}

// RecordError marks span as failed with err.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
