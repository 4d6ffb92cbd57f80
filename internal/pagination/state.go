package pagination

// State aggregates every derived pagination value needed to render navigable
// controls for one page of results. It is recomputed from (offset, limit,
// total) on every render and never stored across requests.
type State struct {
	Offset int
	Limit  int
	Total  int64

	// CurrentPage is the 1-based page containing the offset.
	CurrentPage int
	// TotalPages is at least 1, even when Total is 0.
	TotalPages int

	// HasPrevious is false exactly when Offset is 0.
	HasPrevious bool
	// HasNext is false exactly when CurrentPage equals TotalPages.
	HasNext bool

	// RangeStart and RangeEnd are the 1-based inclusive item positions
	// shown on this page; both are 0 for an empty result set.
	RangeStart int64
	RangeEnd   int64

	// Window is the clipped sequence of page numbers to display, with
	// Ellipsis markers for collapsed gaps.
	Window []int
}

// NewState derives the full pagination state for one page.
func NewState(offset, limit int, total int64) State {
	currentPage := CalculateCurrentPage(offset, limit)
	totalPages := CalculateTotalPages(total, limit)
	rangeStart, rangeEnd := VisibleRange(offset, limit, total)

	return State{
		Offset:      offset,
		Limit:       limit,
		Total:       total,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		HasPrevious: offset != 0,
		HasNext:     currentPage < totalPages,
		RangeStart:  rangeStart,
		RangeEnd:    rangeEnd,
		Window:      PageWindow(currentPage, totalPages),
	}
}
