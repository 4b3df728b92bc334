package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"pagedlist/pkg/pagedlist"
)

// setupExporter installs an in-memory tracer provider for the duration of the test.
// Tests using it touch global state and must not run in parallel.
func setupExporter(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

func attrMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, a := range attrs {
		out[a.Key] = a.Value
	}
	return out
}

func TestMiddleware_CreatesSpan(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pages", nil))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "POST /pages", span.Name)

	attrs := attrMap(span.Attributes)
	assert.Equal(t, "POST", attrs["http.method"].AsString())
	assert.Equal(t, "/pages", attrs["http.path"].AsString())
	assert.EqualValues(t, http.StatusCreated, attrs["http.status_code"].AsInt64())

	assert.Equal(t, span.SpanContext.TraceID().String(), rr.Header().Get(TraceIDHeader))
	assert.NotEqual(t, codes.Error, span.Status.Code)
}

func TestMiddleware_PropagatesTraceContext(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/pages/metadata", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent.SpanID().String())
}

func TestMiddleware_ServerErrorMarksSpan(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestStartSpan_PageAttributes(t *testing.T) {
	exporter := setupExporter(t)

	list, err := pagedlist.New(5, 10, 25, []string{})
	require.NoError(t, err)

	_, span := StartSpan(context.Background(), "pagedlist.build", attribute.String("source", "test"))
	SetPageAttributes(span, list)
	RecordError(span, nil)
	RecordError(span, errors.New("boom"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	attrs := attrMap(spans[0].Attributes)
	assert.Equal(t, "test", attrs["source"].AsString())
	assert.EqualValues(t, 5, attrs["page.number"].AsInt64())
	assert.EqualValues(t, 3, attrs["page.count"].AsInt64())
	assert.EqualValues(t, 0, attrs["page.first_item"].AsInt64())
	assert.True(t, attrs["page.out_of_range"].AsBool())

	assert.Equal(t, codes.Error, spans[0].Status.Code)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
}
