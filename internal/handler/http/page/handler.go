// Package page serves the page construction API: building a page envelope
// from an already-fetched subset, reading one item from it, and computing
// metadata for a page position.
package page

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"pagedlist/internal/common/pagination"
	"pagedlist/internal/handler/http/respond"
	"pagedlist/internal/observability/logging"
	"pagedlist/internal/observability/tracing"
	"pagedlist/pkg/pagedlist"
)

// Handlers holds the dependencies shared by the page endpoints.
// Handlers log through logging.FromContext, so the logger comes from
// the ContextLogger middleware.
type Handlers struct {
	PaginationCfg pagination.Config
}

// fail records err on the span, in metrics and in the log, then writes the
// mapped error response.
func (h Handlers) fail(w http.ResponseWriter, r *http.Request, span trace.Span, params pagination.Params, err error) {
	tracing.RecordError(span, err)

	errorType := errorTypeFor(err)
	pagination.RecordError(errorType)
	pagination.LogError(logging.FromContext(r.Context()), params, err, errorType)

	code := respond.PageError(w, err)
	pagination.RecordRequest(code, params.PageNumber)
}

// succeed records a successfully built page and writes body as JSON.
func (h Handlers) succeed(w http.ResponseWriter, r *http.Request, span trace.Span, meta pagedlist.Metadata, count int, start time.Time, body any) {
	tracing.SetPageAttributes(span, meta)

	duration := time.Since(start)
	pagination.RecordPage(meta)
	pagination.RecordRequest(http.StatusOK, meta.PageNumber())
	pagination.RecordDuration(pagination.OperationHandler, duration.Seconds())
	pagination.LogPage(logging.FromContext(r.Context()), meta, count, duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, body)
}

func errorTypeFor(err error) string {
	switch {
	case errors.Is(err, pagedlist.ErrInvalidArgument):
		return pagination.ErrorTypeValidation
	case errors.Is(err, pagedlist.ErrIndexOutOfRange):
		return pagination.ErrorTypeIndex
	default:
		return pagination.ErrorTypeInternal
	}
}

// linksBase resolves the URL navigation links are built on. An explicit base
// must be an absolute http(s) URL or an absolute path.
func linksBase(r *http.Request, explicit string) (*url.URL, error) {
	if explicit == "" {
		return &url.URL{Path: r.URL.Path, RawQuery: r.URL.RawQuery}, nil
	}

	u, err := url.Parse(explicit)
	if err != nil {
		return nil, errInvalidLinksBase
	}
	switch {
	case (u.Scheme == "http" || u.Scheme == "https") && u.Host != "":
		return u, nil
	case u.Scheme == "" && u.Host == "" && strings.HasPrefix(u.Path, "/"):
		return u, nil
	default:
		return nil, errInvalidLinksBase
	}
}
