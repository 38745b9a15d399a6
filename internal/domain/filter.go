package domain

import (
	"strings"
	"time"
)

// SortKey selects the ordering of search results.
type SortKey string

const (
	SortStart     SortKey = "start"
	SortPosted    SortKey = "posted"
	SortUpdated   SortKey = "updated"
	SortAlphaAsc  SortKey = "alpha_asc"
	SortAlphaDesc SortKey = "alpha_desc"
)

// ParseSortKey maps a client value to a SortKey. Unknown or empty values fall back to SortStart.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortStart, SortPosted, SortUpdated, SortAlphaAsc, SortAlphaDesc:
		return k
	}
	return SortStart
}

// Default page sizes for the public search and the user-scoped views.
const (
	DefaultSearchPageSize = 3
	DefaultMinePageSize   = 10
)

// FilterSpec is the validated form of a search request. Zero-valued fields do not filter.
type FilterSpec struct {
	Query        string
	Name         string
	Tags         []string
	StartsAfter  *time.Time
	StartsBefore *time.Time
	Status       EventStatus
	// ContributorID restricts results to events created by this user.
	ContributorID string
	// SavedBy restricts results to events saved by this user.
	SavedBy    string
	Sort       SortKey
	Pagination PaginationParams
}

// ParseTagList splits a comma-separated tag parameter into normalized names.
func ParseTagList(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return NormalizeTagNames(strings.Split(csv, ","))
}

// NormalizeTagNames trims names, drops empty ones and removes duplicates, keeping first-seen order.
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
