package pagedlist

import (
	"fmt"
	"iter"
)

// Builder accumulates the items of a page and freezes them into a PagedList.
//
// Example usage:
//
//	b := pagedlist.NewBuilder[Article](page, size, total)
//	for rows.Next() {
//	    b.Add(scanArticle(rows))
//	}
//	list, err := b.Build()
//
// Build copies the accumulated items, so a PagedList returned by Build is not
// affected by later calls to Add. A Builder is not safe for concurrent use.
type Builder[T any] struct {
	pageNumber     int
	pageSize       int
	totalItemCount int
	items          []T
}

// NewBuilder returns a Builder for the given page. The parameters are
// validated by Build.
func NewBuilder[T any](pageNumber, pageSize, totalItemCount int) *Builder[T] {
	capHint := 0
	if pageSize > 0 && pageSize <= maxPrealloc {
		capHint = pageSize
	}
	return &Builder[T]{
		pageNumber:     pageNumber,
		pageSize:       pageSize,
		totalItemCount: totalItemCount,
		items:          make([]T, 0, capHint),
	}
}

// maxPrealloc bounds the capacity reserved up front for very large page sizes.
const maxPrealloc = 1024

// Add appends items to the page and returns the builder for chaining.
func (b *Builder[T]) Add(items ...T) *Builder[T] {
	b.items = append(b.items, items...)
	return b
}

// Len returns the number of items added so far.
func (b *Builder[T]) Len() int {
	return len(b.items)
}

// Build validates the page parameters and returns an immutable PagedList.
// It may be called more than once; every call returns an independent value.
func (b *Builder[T]) Build() (*PagedList[T], error) {
	return New(b.pageNumber, b.pageSize, b.totalItemCount, b.items)
}

// FromSeq materializes an already-fetched sequence into a page.
//
// The parameters are validated before seq is consumed, and consumption stops
// with an ErrInvalidArgument error as soon as seq yields more than pageSize
// items, so an unbounded sequence is never drained.
func FromSeq[T any](pageNumber, pageSize, totalItemCount int, seq iter.Seq[T]) (*PagedList[T], error) {
	if _, err := NewMetadata(pageNumber, pageSize, totalItemCount); err != nil {
		return nil, err
	}

	b := NewBuilder[T](pageNumber, pageSize, totalItemCount)
	for item := range seq {
		if b.Len() == pageSize {
			return nil, invalidArgument("len(items)", pageSize+1, fmt.Sprintf("subset cannot exceed page size %d", pageSize))
		}
		b.Add(item)
	}
	return b.Build()
}
