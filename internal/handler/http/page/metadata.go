package page

import (
	"net/http"
	"net/url"
	"time"

	"pagedlist/internal/common/pagination"
	"pagedlist/internal/observability/logging"
	"pagedlist/internal/observability/tracing"
)

// Metadata handles GET /pages/metadata?page=&page_size=&total=.
//
// It derives the metadata for a page position without any items, together
// with the LIMIT/OFFSET window a data source would read, the window of page
// numbers a pager would show and navigation links back to this endpoint. Missing page and page_size fall back to the
// configured defaults; total is required.
//
// Responses:
//   - 200 MetadataResponse
//   - 400 invalid or missing query parameters
func (h Handlers) Metadata(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, span := tracing.StartSpan(r.Context(), "page.metadata")
	defer span.End()
	r = r.WithContext(ctx)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		h.fail(w, r, span, params, err)
		return
	}
	pagination.LogRequest(logging.FromContext(r.Context()), params)

	total, err := pagination.ParseTotalItemCount(r)
	if err != nil {
		h.fail(w, r, span, params, err)
		return
	}

	strategy := pagination.OffsetStrategy{}
	buildStart := time.Now()
	meta, err := strategy.BuildMetadata(params, total)
	pagination.RecordDuration(pagination.OperationBuild, time.Since(buildStart).Seconds())
	if err != nil {
		h.fail(w, r, span, params, err)
		return
	}

	window := pagination.PageWindow(meta, h.PaginationCfg.WindowSize)
	if window == nil {
		window = []int{}
	}

	base := &url.URL{Path: r.URL.Path, RawQuery: r.URL.RawQuery}
	links := pagination.BuildLinks(base, meta)
	if header := links.Header(); header != "" {
		w.Header().Set("Link", header)
	}

	h.succeed(w, r, span, meta, 0, start, MetadataResponse{
		Pagination: meta,
		Query:      strategy.CalculateQuery(params),
		Window:     window,
		Links:      &links,
	})
}
