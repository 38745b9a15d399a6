package helpers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"campusevents/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseFilterSpec builds a FilterSpec from the search query string:
// query, name, tags (comma separated), from, to, status, sort, page and pageSize.
// Malformed paging and sort values fall back to defaults; malformed dates or status are errors.
func ParseFilterSpec(r *http.Request, defaultPageSize int) (domain.FilterSpec, error) {
	q := r.URL.Query()
	f := domain.FilterSpec{
		Query:      strings.TrimSpace(q.Get("query")),
		Name:       strings.TrimSpace(q.Get("name")),
		Tags:       domain.ParseTagList(q.Get("tags")),
		Sort:       domain.ParseSortKey(q.Get("sort")),
		Pagination: ParsePagination(r, defaultPageSize),
	}

	var err error
	if f.StartsAfter, err = parseTime(q.Get("from"), false); err != nil {
		return f, fmt.Errorf("from: %w", err)
	}
	if f.StartsBefore, err = parseTime(q.Get("to"), true); err != nil {
		return f, fmt.Errorf("to: %w", err)
	}
	if s := strings.TrimSpace(q.Get("status")); s != "" {
		f.Status = domain.EventStatus(strings.ToLower(s))
		if !f.Status.Valid() {
			return f, fmt.Errorf("%w: status must be one of draft, published, cancelled", domain.ErrInvalidInput)
		}
	}
	return f, nil
}

// parseTime accepts RFC 3339 timestamps or plain dates. A plain date used as an upper
// bound covers the whole day.
func parseTime(s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: expected RFC 3339 timestamp or YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
