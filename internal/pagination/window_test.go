package pagination_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"amlsentinel/internal/pagination"
)

func TestPageWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		current    int
		totalPages int
		want       []int
	}{
		{
			name:       "single page",
			current:    1,
			totalPages: 1,
			want:       []int{1},
		},
		{
			name:       "five pages shown in full",
			current:    1,
			totalPages: 5,
			want:       []int{1, 2, 3, 4, 5},
		},
		{
			name:       "seven pages is the largest untruncated window",
			current:    4,
			totalPages: 7,
			want:       []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:       "first page of twenty",
			current:    1,
			totalPages: 20,
			want:       []int{1, 2, pagination.Ellipsis, 20},
		},
		{
			name:       "middle of twenty",
			current:    10,
			totalPages: 20,
			want:       []int{1, pagination.Ellipsis, 9, 10, 11, pagination.Ellipsis, 20},
		},
		{
			name:       "last page of twenty",
			current:    20,
			totalPages: 20,
			want:       []int{1, pagination.Ellipsis, 19, 20},
		},
		{
			name:       "near the start keeps the run contiguous",
			current:    3,
			totalPages: 20,
			want:       []int{1, 2, 3, 4, pagination.Ellipsis, 20},
		},
		{
			name:       "single page gap on the left collapses to the page",
			current:    4,
			totalPages: 20,
			want:       []int{1, 2, 3, 4, 5, pagination.Ellipsis, 20},
		},
		{
			name:       "first position needing a left ellipsis",
			current:    5,
			totalPages: 20,
			want:       []int{1, pagination.Ellipsis, 4, 5, 6, pagination.Ellipsis, 20},
		},
		{
			name:       "single page gap on the right collapses to the page",
			current:    17,
			totalPages: 20,
			want:       []int{1, pagination.Ellipsis, 16, 17, 18, 19, 20},
		},
		{
			name:       "near the end keeps the run contiguous",
			current:    18,
			totalPages: 20,
			want:       []int{1, pagination.Ellipsis, 17, 18, 19, 20},
		},
		{
			name:       "eight pages gets truncated",
			current:    1,
			totalPages: 8,
			want:       []int{1, 2, pagination.Ellipsis, 8},
		},
		{
			name:       "current out of range is clamped",
			current:    99,
			totalPages: 5,
			want:       []int{1, 2, 3, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.PageWindow(tt.current, tt.totalPages)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PageWindow(%d, %d) mismatch (-want +got):\n%s", tt.current, tt.totalPages, diff)
			}
		})
	}
}

// TestPageWindow_Properties exercises the structural invariants of the window
// across every (current, totalPages) combination up to 40 pages.
func TestPageWindow_Properties(t *testing.T) {
	t.Parallel()

	for totalPages := 1; totalPages <= 40; totalPages++ {
		for current := 1; current <= totalPages; current++ {
			window := pagination.PageWindow(current, totalPages)

			if window[0] != 1 {
				t.Fatalf("window(%d, %d) does not start with page 1: %v", current, totalPages, window)
			}
			if totalPages > 1 && window[len(window)-1] != totalPages {
				t.Fatalf("window(%d, %d) does not end with the last page: %v", current, totalPages, window)
			}

			foundCurrent := false
			prev := 0
			for i, p := range window {
				if p == pagination.Ellipsis {
					if i == 0 || i == len(window)-1 {
						t.Fatalf("window(%d, %d) starts or ends with an ellipsis: %v", current, totalPages, window)
					}
					if window[i-1] == pagination.Ellipsis {
						t.Fatalf("window(%d, %d) has adjacent ellipsis markers: %v", current, totalPages, window)
					}
					continue
				}
				if p <= prev && prev != 0 {
					// Page numbers between ellipsis markers must ascend.
					if window[i-1] != pagination.Ellipsis {
						t.Fatalf("window(%d, %d) is not ascending: %v", current, totalPages, window)
					}
				}
				if p == current {
					foundCurrent = true
				}
				prev = p
			}
			if !foundCurrent {
				t.Fatalf("window(%d, %d) does not contain the current page: %v", current, totalPages, window)
			}

			// An ellipsis must always hide at least two pages; a single
			// hidden page would have been collapsed to the page itself.
			for i, p := range window {
				if p != pagination.Ellipsis {
					continue
				}
				gap := window[i+1] - window[i-1] - 1
				if gap < 2 {
					t.Fatalf("window(%d, %d) hides only %d page(s) behind an ellipsis: %v", current, totalPages, gap, window)
				}
			}
		}
	}
}

func TestPageWindow_LargeTotalsContainEllipsis(t *testing.T) {
	t.Parallel()

	// Scenario from the queue view: 200 alerts at 10 per page.
	totalPages := pagination.CalculateTotalPages(200, 10)
	if totalPages != 20 {
		t.Fatalf("CalculateTotalPages(200, 10) = %d, want 20", totalPages)
	}

	window := pagination.PageWindow(1, totalPages)
	hasEllipsis := false
	for _, p := range window {
		if p == pagination.Ellipsis {
			hasEllipsis = true
			break
		}
	}
	if !hasEllipsis {
		t.Errorf("PageWindow(1, %d) = %v, want at least one ellipsis", totalPages, window)
	}
}
