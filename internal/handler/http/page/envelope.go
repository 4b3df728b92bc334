package page

import (
	"encoding/json"
	"net/http"
	"time"

	"pagedlist/internal/common/pagination"
	"pagedlist/internal/observability/logging"
	"pagedlist/internal/observability/tracing"
	"pagedlist/pkg/pagedlist"
)

// Envelope handles POST /pages.
//
// It builds a page from the posted subset and position and answers with the
// items, the page metadata and navigation links. The links are also sent as
// an RFC 8288 Link header.
//
// Responses:
//   - 200 pagination.Response with the items passed through unchanged
//   - 400 invalid page number, page size, total count, subset or body
//   - 413 body larger than the configured limit
func (h Handlers) Envelope(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, span := tracing.StartSpan(r.Context(), "page.envelope")
	defer span.End()
	r = r.WithContext(ctx)

	req, err := decodePageRequest(r, h.PaginationCfg)
	params := pagination.Params{PageNumber: req.PageNumber, PageSize: req.PageSize}
	if err != nil {
		h.fail(w, r, span, params, err)
		return
	}
	pagination.LogRequest(logging.FromContext(r.Context()), params)

	base, err := linksBase(r, req.LinksBase)
	if err != nil {
		h.fail(w, r, span, params, err)
		return
	}

	buildStart := time.Now()
	list, err := pagedlist.NewBuilder[json.RawMessage](req.PageNumber, req.PageSize, req.TotalItemCount).
		Add(req.Items...).
		Build()
	pagination.RecordDuration(pagination.OperationBuild, time.Since(buildStart).Seconds())
	if err != nil {
		h.fail(w, r, span, params, err)
		return
	}

	links := pagination.BuildLinks(base, list)
	if header := links.Header(); header != "" {
		w.Header().Set("Link", header)
	}

	h.succeed(w, r, span, list.SnapshotMetadata(), list.Count(), start, pagination.FromList(list).WithLinks(links))
}
