// Package pagedlist computes pagination metadata and gives indexed, read-only
// access to the items of one page of a larger ordered collection.
//
// The caller fetches the page itself (a LIMIT/OFFSET query, a slice of an
// in-memory collection, a remote API call) and hands over the page number, the
// page size, the total number of items in the collection and the items on the
// page. The package derives everything else once, at construction time.
//
// # Basic Usage
//
//	meta, err := pagedlist.NewMetadata(2, 10, 25)
//	// meta.PageCount() == 3, meta.FirstItemOnPage() == 11, meta.LastItemOnPage() == 20
//
//	list, err := pagedlist.New(2, 10, 25, articles)
//	if err != nil {
//	    // errors.Is(err, pagedlist.ErrInvalidArgument)
//	}
//	for i, a := range list.All() {
//	    fmt.Println(list.FirstItemOnPage()+i, a.Title)
//	}
//
// # Out-of-range Pages
//
// A page number beyond PageCount is valid input. The metadata keeps the page
// number, page size, total item count and page count, and reports every flag as
// false and both item positions as 0. The items are not re-sliced.
//
// # Snapshots
//
// SnapshotMetadata returns the ten derived fields without the items, for
// caches, logs and JSON responses. Metadata round-trips through encoding/json;
// decoding re-derives the page and rejects snapshots that violate the
// invariants.
package pagedlist
