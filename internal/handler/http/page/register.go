package page

import (
	"net/http"

	"pagedlist/internal/common/pagination"
)

// Register registers the page endpoints on mux.
func Register(mux *http.ServeMux, cfg pagination.Config) {
	h := Handlers{PaginationCfg: cfg}

	mux.HandleFunc("POST /pages", h.Envelope)
	mux.HandleFunc("POST /pages/item", h.Item)
	mux.HandleFunc("GET /pages/metadata", h.Metadata)
}
