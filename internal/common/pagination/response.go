package pagination

import "pagedlist/pkg/pagedlist"

// Response is a generic paginated response wrapper.
// T is the type of data items on the page.
//
// Example usage:
//
//	list, _ := pagedlist.New(page, size, total, items)
//	response := pagination.FromList(list)
//	// response is of type pagination.Response[Item]
type Response[T any] struct {
	Data       []T                `json:"data"`            // Items on the current page
	Pagination pagedlist.Metadata `json:"pagination"`      // Position of the page within the collection
	Links      *Links             `json:"links,omitempty"` // Navigation URLs, when a base URL is known
}

// NewResponse creates a new paginated response with data and metadata.
func NewResponse[T any](data []T, metadata pagedlist.Metadata) Response[T] {
	if data == nil {
		data = []T{}
	}
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}

// FromList creates a response from a page. It carries a copy of the items and
// a metadata snapshot, never a reference into the page itself.
func FromList[T any](list *pagedlist.PagedList[T]) Response[T] {
	return NewResponse(list.Slice(), list.SnapshotMetadata())
}

// WithLinks returns a copy of the response with navigation links attached.
func (r Response[T]) WithLinks(links Links) Response[T] {
	r.Links = &links
	return r
}
