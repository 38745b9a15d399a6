package helpers

import (
	"net/http"
	"strconv"

	"campusevents/internal/domain"
)

// ParsePagination reads page and pageSize from the query string. Missing or malformed
// values fall back to page 1 and defaultPageSize; pageSize is capped at domain.MaxPageSize.
func ParsePagination(r *http.Request, defaultPageSize int) domain.PaginationParams {
	q := r.URL.Query()
	p := domain.PaginationParams{}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		p.PageSize = v
	}
	return p.Normalize(defaultPageSize)
}
