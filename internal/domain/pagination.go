package domain

import "math"

// MaxPageSize caps the page size a client may request.
const MaxPageSize = 100

// MaxPage caps the page number so the row offset always fits in a Postgres integer.
const MaxPage = math.MaxInt32 / MaxPageSize

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Normalize replaces a page below 1 with 1, a non-positive page size with defaultSize,
// and caps the page at MaxPage and the page size at MaxPageSize.
func (p PaginationParams) Normalize(defaultSize int) PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
