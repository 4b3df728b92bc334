// Package tracing provides OpenTelemetry tracing for the page API.
//
// Middleware starts a server span per request and propagates W3C trace
// context. Handlers open child spans with StartSpan and annotate them with
// page position via SetPageAttributes.
//
// Example usage:
//
//	ctx, span := tracing.StartSpan(r.Context(), "pagedlist.build")
//	defer span.End()
//	tracing.SetPageAttributes(span, list)
package tracing
