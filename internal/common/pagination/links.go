package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"pagedlist/pkg/pagedlist"
)

// Links holds navigation URLs for a page. Empty fields have no target.
type Links struct {
	First string `json:"first,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}

// BuildLinks derives navigation URLs from page metadata only.
//
// first and last are present whenever the collection has pages; prev and next
// follow HasPreviousPage and HasNextPage, so an out-of-range page gets neither.
// Other query parameters of base are preserved.
func BuildLinks(base *url.URL, m pagedlist.MetadataReader) Links {
	var links Links
	if m.PageCount() == 0 {
		return links
	}

	links.First = pageURL(base, 1, m.PageSize())
	links.Last = pageURL(base, m.PageCount(), m.PageSize())
	if m.HasPreviousPage() {
		links.Prev = pageURL(base, m.PageNumber()-1, m.PageSize())
	}
	if m.HasNextPage() {
		links.Next = pageURL(base, m.PageNumber()+1, m.PageSize())
	}
	return links
}

// Header formats the links as an RFC 8288 Link header value, in
// first, prev, next, last order. Returns "" when there are no links.
func (l Links) Header() string {
	rels := []struct{ rel, target string }{
		{"first", l.First},
		{"prev", l.Prev},
		{"next", l.Next},
		{"last", l.Last},
	}

	parts := make([]string, 0, len(rels))
	for _, r := range rels {
		if r.target == "" {
			continue
		}
		parts = append(parts, "<"+r.target+`>; rel="`+r.rel+`"`)
	}
	return strings.Join(parts, ", ")
}

func pageURL(base *url.URL, page, size int) string {
	u := *base
	q := u.Query()
	q.Set(QueryPage, strconv.Itoa(page))
	q.Set(QueryPageSize, strconv.Itoa(size))
	u.RawQuery = q.Encode()
	return u.String()
}
