package models

import "errors"

var ErrInvalidPagination = errors.New("invalid pagination: pages must satisfy 1 <= current_page <= last_page")

// Pagination is the server-reported cursor pair for the current page. Both
// values are 1-based; an empty collection still reports last_page = 1.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

// DefaultPagination is the state before the first fetch.
func DefaultPagination() Pagination {
	return Pagination{CurrentPage: 1, LastPage: 1}
}

// Validate enforces 1 <= CurrentPage <= LastPage.
func (p Pagination) Validate() error {
	if p.CurrentPage < 1 || p.LastPage < 1 || p.CurrentPage > p.LastPage {
		return ErrInvalidPagination
	}
	return nil
}

// AtStart reports whether the previous-page control must be disabled.
func (p Pagination) AtStart() bool {
	return p.CurrentPage <= 1
}

// AtEnd reports whether the next-page control must be disabled.
func (p Pagination) AtEnd() bool {
	return p.CurrentPage >= p.LastPage
}

// InRange reports whether a fetch for the given page may be issued.
func (p Pagination) InRange(page int) bool {
	return page >= 1 && page <= p.LastPage
}
