package pagination

import (
	"math"

	"pagedlist/pkg/pagedlist"
)

// CalculateOffset calculates the database OFFSET value based on page number and page size.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * size, saturating at math.MaxInt.
// Page numbers or sizes below 1 yield 0.
//
// Examples:
//   - Page 1, Size 20 -> Offset 0
//   - Page 2, Size 20 -> Offset 20
//   - Page 3, Size 10 -> Offset 20
func CalculateOffset(page, size int) int {
	if page < 1 || size < 1 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (page - 1) * size
}

// PageWindow returns up to size consecutive page numbers to show in a pager,
// centred on the current page and shifted to stay within [1, PageCount].
//
// A page number past the end is treated as the last page so the window still
// offers a way back. Returns nil for an empty collection or a size below 1.
//
// Examples (10 pages, size 5):
//   - Page 1  -> [1 2 3 4 5]
//   - Page 5  -> [3 4 5 6 7]
//   - Page 10 -> [6 7 8 9 10]
func PageWindow(m pagedlist.MetadataReader, size int) []int {
	count := m.PageCount()
	if count == 0 || size < 1 {
		return nil
	}

	size = min(size, count)
	current := min(max(m.PageNumber(), 1), count)

	start := max(current-size/2, 1)
	end := start + size - 1
	if end > count {
		end = count
		start = max(end-size+1, 1)
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
