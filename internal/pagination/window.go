package pagination

// Ellipsis marks a gap in a page window where a run of page numbers was
// collapsed.
const Ellipsis = -1

// maxPlainPages is the largest page count displayed without any truncation.
const maxPlainPages = 7

// PageWindow returns the ordered sequence of page numbers to display for
// navigation, with Ellipsis markers standing in for collapsed gaps.
//
// Policy:
//   - up to 7 total pages: every page is shown contiguously, no ellipsis
//   - more than 7 pages: page 1 and the last page are always shown, plus a
//     contiguous neighborhood of one page either side of current
//   - an ellipsis replaces any gap of more than one page; a gap of exactly
//     one page is shown as the page number itself, so two ellipsis markers
//     are never adjacent
func PageWindow(current, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	current = ClampPage(current, totalPages)

	if totalPages <= maxPlainPages {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	start := current - 1
	end := current + 1
	if start < 2 {
		start = 2
	}
	if end > totalPages-1 {
		end = totalPages - 1
	}

	// A gap of exactly one page collapses to the page itself.
	if start == 3 {
		start = 2
	}
	if end == totalPages-2 {
		end = totalPages - 1
	}

	pages := []int{1}
	if start > 2 {
		pages = append(pages, Ellipsis)
	}
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	if end < totalPages-1 {
		pages = append(pages, Ellipsis)
	}
	return append(pages, totalPages)
}
