package page

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"pagedlist/internal/common/pagination"
	"pagedlist/pkg/pagedlist"
)

var errInvalidLinksBase = fmt.Errorf("invalid request body: links_base must be an absolute http(s) URL or path: %w", pagedlist.ErrInvalidArgument)

// PageRequest is the body accepted by POST /pages and POST /pages/item.
// Items are the already-fetched subset for the page and are passed through
// untouched.
type PageRequest struct {
	PageNumber     int               `json:"page_number"`
	PageSize       int               `json:"page_size"`
	TotalItemCount int               `json:"total_item_count"`
	Items          []json.RawMessage `json:"items"`
	// LinksBase is the URL navigation links point at. Defaults to the request path.
	LinksBase string `json:"links_base,omitempty"`
}

// ItemResponse is the body returned by POST /pages/item.
type ItemResponse struct {
	Index      int                `json:"index"`
	Item       json.RawMessage    `json:"item"`
	Pagination pagedlist.Metadata `json:"pagination"`
}

// MetadataResponse is the body returned by GET /pages/metadata.
type MetadataResponse struct {
	Pagination pagedlist.Metadata     `json:"pagination"`
	Query      pagination.QueryParams `json:"query"`
	Window     []int                  `json:"window"`
	Links      *pagination.Links      `json:"links,omitempty"`
}

// decodePageRequest reads a single PageRequest from the body.
// Malformed bodies wrap pagedlist.ErrInvalidArgument; an oversized body keeps
// its *http.MaxBytesError.
func decodePageRequest(r *http.Request, cfg pagination.Config) (PageRequest, error) {
	var req PageRequest
	if r.Body == nil {
		return req, fmt.Errorf("invalid request body: body is required: %w", pagedlist.ErrInvalidArgument)
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return req, fmt.Errorf("decode request body: %w", err)
		}
		if errors.Is(err, io.EOF) {
			return req, fmt.Errorf("invalid request body: body is required: %w", pagedlist.ErrInvalidArgument)
		}
		return req, fmt.Errorf("invalid request body: %s: %w", err.Error(), pagedlist.ErrInvalidArgument)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, fmt.Errorf("invalid request body: must contain a single JSON object: %w", pagedlist.ErrInvalidArgument)
	}

	if req.PageSize > cfg.MaxPageSize {
		return req, fmt.Errorf("invalid request body: page_size must be between 1 and %d: %w", cfg.MaxPageSize, pagedlist.ErrInvalidArgument)
	}
	return req, nil
}
