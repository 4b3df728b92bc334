package pagination

import (
	"fmt"
	"net/http"
	"strconv"

	"pagedlist/pkg/pagedlist"
)

// Query parameter names shared by parsing and link building.
const (
	QueryPage     = "page"
	QueryPageSize = "page_size"
	QueryTotal    = "total"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	PageNumber int // 1-based page number
	PageSize   int // Items per page
}

// ParseQueryParams parses pagination parameters from HTTP request query string.
// Missing parameters take their value from config; the result is then checked
// with Params.Validate.
//
// Query parameters:
//   - page: Page number (must be positive integer)
//   - page_size: Items per page (must be between 1 and config.MaxPageSize)
//
// Returned errors wrap pagedlist.ErrInvalidArgument.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		PageNumber: config.DefaultPage,
		PageSize:   config.DefaultPageSize,
	}

	q := r.URL.Query()

	if pageStr := q.Get(QueryPage); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer: %w", pagedlist.ErrInvalidArgument)
		}
		params.PageNumber = page
	}

	if sizeStr := q.Get(QueryPageSize); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: page_size must be between 1 and %d: %w", config.MaxPageSize, pagedlist.ErrInvalidArgument)
		}
		params.PageSize = size
	}

	if err := params.Validate(config); err != nil {
		return params, fmt.Errorf("invalid query parameter: %w", err)
	}
	return params, nil
}

// ParseTotalItemCount reads the required total query parameter.
// Returned errors wrap pagedlist.ErrInvalidArgument.
func ParseTotalItemCount(r *http.Request) (int, error) {
	totalStr := r.URL.Query().Get(QueryTotal)
	if totalStr == "" {
		return 0, fmt.Errorf("invalid query parameter: total is required: %w", pagedlist.ErrInvalidArgument)
	}
	total, err := strconv.Atoi(totalStr)
	if err != nil || total < 0 {
		return 0, fmt.Errorf("invalid query parameter: total must be a non-negative integer: %w", pagedlist.ErrInvalidArgument)
	}
	return total, nil
}
