package page

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"pagedlist/internal/common/pagination"
	"pagedlist/internal/observability/tracing"
	"pagedlist/pkg/pagedlist"
)

// QueryIndex is the query parameter naming the zero-based item index.
const QueryIndex = "index"

// Item handles POST /pages/item?index=N.
//
// The body is the same as for POST /pages; the API keeps no state between
// requests. The item at index N of the subset is returned with the page
// metadata.
//
// Responses:
//   - 200 ItemResponse
//   - 400 missing or malformed index, or an invalid page
//   - 404 index outside the subset
//   - 413 body larger than the configured limit
func (h Handlers) Item(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, span := tracing.StartSpan(r.Context(), "page.item")
	defer span.End()
	r = r.WithContext(ctx)

	index, err := parseIndex(r)
	if err != nil {
		h.fail(w, r, span, pagination.Params{}, err)
		return
	}
	span.SetAttributes(attribute.Int("page.index", index))

	req, err := decodePageRequest(r, h.PaginationCfg)
	params := pagination.Params{PageNumber: req.PageNumber, PageSize: req.PageSize}
	if err != nil {
		h.fail(w, r, span, params, err)
		return
	}

	buildStart := time.Now()
	list, err := pagedlist.New(req.PageNumber, req.PageSize, req.TotalItemCount, req.Items)
	pagination.RecordDuration(pagination.OperationBuild, time.Since(buildStart).Seconds())
	if err != nil {
		h.fail(w, r, span, params, err)
		return
	}

	item, err := list.At(index)
	if err != nil {
		tracing.SetPageAttributes(span, list)
		h.fail(w, r, span, params, err)
		return
	}

	h.succeed(w, r, span, list.SnapshotMetadata(), 1, start, ItemResponse{
		Index:      index,
		Item:       item,
		Pagination: list.SnapshotMetadata(),
	})
}

func parseIndex(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(QueryIndex)
	if raw == "" {
		return 0, fmt.Errorf("invalid query parameter: index is required: %w", pagedlist.ErrInvalidArgument)
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid query parameter: index must be an integer: %w", pagedlist.ErrInvalidArgument)
	}
	return index, nil
}
