package pagedlist

import (
	"fmt"
	"iter"
	"slices"
)

// PagedList is one page of an ordered collection: the items already fetched for
// the page together with the Metadata describing its position.
//
// A PagedList owns a private copy of its items and exposes no mutation methods,
// so it is safe for concurrent reads once constructed.
type PagedList[T any] struct {
	meta  Metadata
	items []T
}

var _ MetadataReader = (*PagedList[int])(nil)

// New builds a page from its position parameters and the items belonging to it.
//
// items must already be sliced to the requested page; New neither slices nor
// pads it. An out-of-range page is normally paired with an empty subset but the
// supplied items are kept as given.
//
// Returns an error wrapping ErrInvalidArgument if pageNumber < 1, pageSize < 1,
// totalItemCount < 0 or len(items) > pageSize.
func New[T any](pageNumber, pageSize, totalItemCount int, items []T) (*PagedList[T], error) {
	meta, err := NewMetadata(pageNumber, pageSize, totalItemCount)
	if err != nil {
		return nil, err
	}
	if len(items) > pageSize {
		return nil, invalidArgument("len(items)", len(items), fmt.Sprintf("subset cannot exceed page size %d", pageSize))
	}

	return &PagedList[T]{
		meta:  meta,
		items: slices.Clone(items),
	}, nil
}

// At returns the item at the zero-based index within the page.
// Returns an error wrapping ErrIndexOutOfRange if index is outside [0, Count()).
func (l *PagedList[T]) At(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, fmt.Errorf("index = %d, count = %d: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	return l.items[index], nil
}

// Count returns the number of items on the page. It can be less than PageSize
// on the last page or for an out-of-range page.
func (l *PagedList[T]) Count() int {
	return len(l.items)
}

// All returns an iterator over index/item pairs in insertion order.
func (l *PagedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Items returns an iterator over the items in insertion order.
func (l *PagedList[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Slice returns a copy of the items. The result is never nil so that an empty
// page encodes as [] rather than null.
func (l *PagedList[T]) Slice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Metadata returns the page metadata by value.
func (l *PagedList[T]) Metadata() Metadata {
	return l.meta
}

// SnapshotMetadata returns a standalone copy of the metadata with no reference
// to the items, for caching, logging or sending across a process boundary.
func (l *PagedList[T]) SnapshotMetadata() Metadata {
	return l.meta.Clone()
}

func (l *PagedList[T]) PageNumber() int { return l.meta.PageNumber() }
func (l *PagedList[T]) PageSize() int { return l.meta.PageSize() }
func (l *PagedList[T]) TotalItemCount() int { return l.meta.TotalItemCount() }
func (l *PagedList[T]) PageCount() int { return l.meta.PageCount() }
func (l *PagedList[T]) HasPreviousPage() bool { return l.meta.HasPreviousPage() }
func (l *PagedList[T]) HasNextPage() bool { return l.meta.HasNextPage() }
func (l *PagedList[T]) IsFirstPage() bool { return l.meta.IsFirstPage() }
func (l *PagedList[T]) IsLastPage() bool { return l.meta.IsLastPage() }
func (l *PagedList[T]) FirstItemOnPage() int { return l.meta.FirstItemOnPage() }
func (l *PagedList[T]) LastItemOnPage() int { return l.meta.LastItemOnPage() }
