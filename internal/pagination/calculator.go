// Package pagination provides pure derivation of pagination state from an
// offset, a page size, and a backend-supplied total count, plus translation
// of page-change intents into new offsets.
//
// Nothing here is stored between calls: every value is recomputed from
// (offset, limit, total) on each render, so all functions are idempotent,
// side-effect free, and safe for unlimited concurrent invocation.
package pagination

// CalculateOffset translates a 1-based page number into the zero-based
// offset of its first item.
//
// Formula: offset = (page - 1) * limit
//
// Examples:
//   - Page 1, Limit 20 -> Offset 0
//   - Page 3, Limit 10 -> Offset 20
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateCurrentPage derives the 1-based page number containing the item
// at the given zero-based offset. limit must be positive; the result is
// always >= 1 for non-negative offsets.
//
// Formula: page = floor(offset / limit) + 1
func CalculateCurrentPage(offset, limit int) int {
	return offset/limit + 1
}

// CalculateTotalPages derives the total number of pages from the item count.
// There is always at least one page, even for an empty result set.
//
// Examples:
//   - Total 0, Limit 20 -> 1 page
//   - Total 20, Limit 20 -> 1 page
//   - Total 21, Limit 20 -> 2 pages
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1
	}
	// Ceiling division: (total + limit - 1) / limit
	return int((total + int64(limit) - 1) / int64(limit))
}

// ClampPage clamps a requested page number into [1, totalPages], so a
// navigation intent can never land before the first or past the last page.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// GoToPage translates a page-change intent into the offset of that page,
// clamping the requested page into the valid range first.
func GoToPage(page, limit int, total int64) int {
	return CalculateOffset(ClampPage(page, CalculateTotalPages(total, limit)), limit)
}

// NextOffset advances one page. Advancing is disabled on the last page, in
// which case the offset is returned unchanged.
func NextOffset(offset, limit int, total int64) int {
	if CalculateCurrentPage(offset, limit) >= CalculateTotalPages(total, limit) {
		return offset
	}
	return offset + limit
}

// PreviousOffset steps back one page. Stepping back is disabled at offset 0,
// in which case the offset is returned unchanged; otherwise the result never
// goes below 0.
func PreviousOffset(offset, limit int) int {
	if offset == 0 {
		return 0
	}
	if offset < limit {
		return 0
	}
	return offset - limit
}

// VisibleRange returns the 1-based inclusive range of item positions shown
// on the current page. An empty result set yields (0, 0).
func VisibleRange(offset, limit int, total int64) (start, end int64) {
	if total == 0 {
		return 0, 0
	}
	start = int64(offset) + 1
	end = int64(offset + limit)
	if end > total {
		end = total
	}
	return start, end
}
