// Package paging slices an in-memory snapshot of a query result into a page
// envelope with derived navigation metadata.
package paging

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// Params are 1-based page parameters. Zero or negative fields are replaced
// with the defaults by Normalize.
type Params struct {
	PageNumber int
	PageSize   int
}

// Normalize returns p with defaults applied to out-of-range fields.
func (p Params) Normalize() Params {
	if p.PageNumber < 1 {
		p.PageNumber = DefaultPageNumber
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Skip returns the number of leading items to drop for this page.
func (p Params) Skip() int {
	return (p.PageNumber - 1) * p.PageSize
}

// Result is a read-only page of items plus the metadata needed to navigate
// the full sequence it was cut from.
type Result[T any] struct {
	Items           []T  `json:"items"`
	TotalCount      int  `json:"total_count"`
	PageNumber      int  `json:"page_number"`
	PageSize        int  `json:"page_size"`
	TotalPages      int  `json:"total_pages"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// Paginate cuts one page out of snapshot. The total count is taken from the
// full slice before slicing, so a single call is always consistent with
// itself. Pages past the end yield empty items with the true total.
func Paginate[T any](snapshot []T, p Params) Result[T] {
	p = p.Normalize()

	total := len(snapshot)
	totalPages := (total + p.PageSize - 1) / p.PageSize

	start := p.Skip()
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}

	items := make([]T, end-start)
	copy(items, snapshot[start:end])

	return Result[T]{
		Items:           items,
		TotalCount:      total,
		PageNumber:      p.PageNumber,
		PageSize:        p.PageSize,
		TotalPages:      totalPages,
		HasNextPage:     p.PageNumber < totalPages,
		HasPreviousPage: p.PageNumber > 1,
	}
}
