package pagedlist

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// MetadataReader is the read-only view of a page's position within its collection.
// Presentation code (response envelopes, pagers, link headers, logs) depends on
// this interface and never on a mutable value.
type MetadataReader interface {
	PageNumber() int
	PageSize() int
	TotalItemCount() int
	PageCount() int
	HasPreviousPage() bool
	HasNextPage() bool
	IsFirstPage() bool
	IsLastPage() bool
	FirstItemOnPage() int
	LastItemOnPage() int
}

// Metadata describes where a page sits within a larger ordered collection.
//
// All fields are derived once by NewMetadata and cannot be changed afterwards.
// The zero value is not a valid page; it reports page number 0 and no items.
type Metadata struct {
	pageNumber      int
	pageSize        int
	totalItemCount  int
	pageCount       int
	hasPreviousPage bool
	hasNextPage     bool
	isFirstPage     bool
	isLastPage      bool
	firstItemOnPage int
	lastItemOnPage  int
}

var _ MetadataReader = Metadata{}

// NewMetadata derives page metadata from a 1-based page number, a page size and
// the size of the whole collection.
//
// Rules:
//   - PageCount is ceil(totalItemCount / pageSize), or 0 for an empty collection
//   - a page is addressable when PageCount > 0 and pageNumber <= PageCount
//   - for a page that is not addressable every flag is false and both item
//     positions are 0; the supplied numbers and PageCount are still reported
//
// Returns an error wrapping ErrInvalidArgument if pageNumber < 1, pageSize < 1
// or totalItemCount < 0.
//
// Examples:
//   - Page 1, Size 10, Total 25 -> items 1..10, 3 pages, has next
//   - Page 3, Size 10, Total 25 -> items 21..25, last page
//   - Page 5, Size 10, Total 25 -> out of range, items 0..0
func NewMetadata(pageNumber, pageSize, totalItemCount int) (Metadata, error) {
	if pageNumber < 1 {
		return Metadata{}, invalidArgument("pageNumber", pageNumber, "page number cannot be below 1")
	}
	if pageSize < 1 {
		return Metadata{}, invalidArgument("pageSize", pageSize, "page size cannot be less than 1")
	}
	if totalItemCount < 0 {
		return Metadata{}, invalidArgument("totalItemCount", totalItemCount, "total item count cannot be less than 0")
	}

	m := Metadata{
		pageNumber:     pageNumber,
		pageSize:       pageSize,
		totalItemCount: totalItemCount,
		pageCount:      pageCount(totalItemCount, pageSize),
	}

	if !m.Addressable() {
		return m, nil
	}

	m.hasPreviousPage = pageNumber > 1
	m.hasNextPage = pageNumber < m.pageCount
	m.isFirstPage = pageNumber == 1
	m.isLastPage = pageNumber == m.pageCount

	// pageNumber <= pageCount here, so (pageNumber-1)*pageSize < totalItemCount.
	// The last item is clamped before adding so that huge page sizes cannot wrap.
	m.firstItemOnPage = (pageNumber-1)*pageSize + 1
	m.lastItemOnPage = m.firstItemOnPage + min(pageSize-1, totalItemCount-m.firstItemOnPage)

	return m, nil
}

// pageCount is a ceiling division that does not overflow near math.MaxInt.
func pageCount(total, size int) int {
	if total <= 0 {
		return 0
	}
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

// Clone returns a copy carrying the already-derived fields verbatim.
func (m Metadata) Clone() Metadata {
	return Metadata{
		pageNumber:      m.pageNumber,
		pageSize:        m.pageSize,
		totalItemCount:  m.totalItemCount,
		pageCount:       m.pageCount,
		hasPreviousPage: m.hasPreviousPage,
		hasNextPage:     m.hasNextPage,
		isFirstPage:     m.isFirstPage,
		isLastPage:      m.isLastPage,
		firstItemOnPage: m.firstItemOnPage,
		lastItemOnPage:  m.lastItemOnPage,
	}
}

// Equal reports whether all ten fields of m and other match.
func (m Metadata) Equal(other Metadata) bool {
	return m == other
}

// Addressable reports whether the page number lies within [1, PageCount].
func (m Metadata) Addressable() bool {
	return m.pageCount > 0 && m.pageNumber <= m.pageCount
}

// Offset returns the zero-based position of the page's first item in the
// whole collection, (PageNumber - 1) * PageSize, for slicing the subset out of
// a data source. A page that is not addressable starts past the end, so its
// offset is TotalItemCount and the slice it selects is empty.
func (m Metadata) Offset() int {
	if !m.Addressable() {
		return m.totalItemCount
	}
	return m.firstItemOnPage - 1
}

// MetadataReader accessors.

func (m Metadata) PageNumber() int { return m.pageNumber }
func (m Metadata) PageSize() int { return m.pageSize }
func (m Metadata) TotalItemCount() int { return m.totalItemCount }
func (m Metadata) PageCount() int { return m.pageCount }
func (m Metadata) HasPreviousPage() bool { return m.hasPreviousPage }
func (m Metadata) HasNextPage() bool { return m.hasNextPage }
func (m Metadata) IsFirstPage() bool { return m.isFirstPage }
func (m Metadata) IsLastPage() bool { return m.isLastPage }
func (m Metadata) FirstItemOnPage() int { return m.firstItemOnPage }
func (m Metadata) LastItemOnPage() int { return m.lastItemOnPage }

// String implements fmt.Stringer.
func (m Metadata) String() string {
	return fmt.Sprintf("page %d/%d (size %d, items %d-%d of %d)",
		m.pageNumber, m.pageCount, m.pageSize, m.firstItemOnPage, m.lastItemOnPage, m.totalItemCount)
}

// LogValue implements slog.LogValuer so a page is logged as one group of all ten fields.
func (m Metadata) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("page_number", m.pageNumber),
		slog.Int("page_size", m.pageSize),
		slog.Int("total_item_count", m.totalItemCount),
		slog.Int("page_count", m.pageCount),
		slog.Bool("has_previous_page", m.hasPreviousPage),
		slog.Bool("has_next_page", m.hasNextPage),
		slog.Bool("is_first_page", m.isFirstPage),
		slog.Bool("is_last_page", m.isLastPage),
		slog.Int("first_item_on_page", m.firstItemOnPage),
		slog.Int("last_item_on_page", m.lastItemOnPage),
	)
}

// metadataJSON is the wire form of Metadata.
type metadataJSON struct {
	PageNumber      int  `json:"page_number"`
	PageSize        int  `json:"page_size"`
	TotalItemCount  int  `json:"total_item_count"`
	PageCount       int  `json:"page_count"`
	HasPreviousPage bool `json:"has_previous_page"`
	HasNextPage     bool `json:"has_next_page"`
	IsFirstPage     bool `json:"is_first_page"`
	IsLastPage      bool `json:"is_last_page"`
	FirstItemOnPage int  `json:"first_item_on_page"`
	LastItemOnPage  int  `json:"last_item_on_page"`
}

// MarshalJSON implements json.Marshaler.
func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(metadataJSON{
		PageNumber:      m.pageNumber,
		PageSize:        m.pageSize,
		TotalItemCount:  m.totalItemCount,
		PageCount:       m.pageCount,
		HasPreviousPage: m.hasPreviousPage,
		HasNextPage:     m.hasNextPage,
		IsFirstPage:     m.isFirstPage,
		IsLastPage:      m.isLastPage,
		FirstItemOnPage: m.firstItemOnPage,
		LastItemOnPage:  m.lastItemOnPage,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
//
// The page is re-derived from page_number, page_size and total_item_count and
// the decoded derived fields must agree with it, so a snapshot read back from a
// cache or another service always satisfies the same invariants as a fresh one.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var w metadataJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	derived, err := NewMetadata(w.PageNumber, w.PageSize, w.TotalItemCount)
	if err != nil {
		return err
	}

	decoded := Metadata{
		pageNumber:      w.PageNumber,
		pageSize:        w.PageSize,
		totalItemCount:  w.TotalItemCount,
		pageCount:       w.PageCount,
		hasPreviousPage: w.HasPreviousPage,
		hasNextPage:     w.HasNextPage,
		isFirstPage:     w.IsFirstPage,
		isLastPage:      w.IsLastPage,
		firstItemOnPage: w.FirstItemOnPage,
		lastItemOnPage:  w.LastItemOnPage,
	}
	if !decoded.Equal(derived) {
		return fmt.Errorf("metadata %s is inconsistent with its inputs (want %s): %w", decoded, derived, ErrInvalidArgument)
	}

	*m = decoded
	return nil
}
