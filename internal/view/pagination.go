// Package view computes serializable view models from fetched data.
// Nothing in here touches the network or the terminal, so pagination math,
// the calendar grid, and bar scaling stay testable in isolation.
package view

import "fmt"

// Pagination describes the pager controls for one paginated view.
type Pagination struct {
	Total      int
	Page       int // zero-based
	TotalPages int
	HasPrev    bool
	HasNext    bool
	Label      string
	Visible    bool
}

// Paginate computes pager state for a server-reported total, a zero-based
// page index, and a page size. The pager is hidden when everything fits on
// one page.
func Paginate(total, page, size int) Pagination {
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	p := Pagination{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 0,
		HasNext:    page < totalPages-1,
		Visible:    totalPages > 1,
		Label:      fmt.Sprintf("%d / %d (%d записей)", page+1, totalPages, total),
	}
	return p
}

// Prev returns the page index for a pager step back, clamped at zero.
func (p Pagination) Prev() int {
	if p.Page > 0 {
		return p.Page - 1
	}
	return p.Page
}

// Next returns the page index for a pager step forward, clamped at the last
// page.
func (p Pagination) Next() int {
	if p.Page < p.TotalPages-1 {
		return p.Page + 1
	}
	return p.Page
}
