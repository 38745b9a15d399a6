package postgres

import (
	"fmt"
	"slices"
	"strings"

	"campusevents/internal/domain"

	"github.com/lib/pq"
)

// predicate is a conjunction of SQL clauses over "events e" with positional arguments.
// A compiled predicate is shared by the counter and the assembler of one search so both
// stages filter identically.
type predicate struct {
	clauses []string
	args    []any
}

// bind appends v to the argument list and returns its placeholder.
func (p *predicate) bind(v any) string {
	p.args = append(p.args, v)
	return fmt.Sprintf("$%d", len(p.args))
}

func (p *predicate) and(clause string) {
	p.clauses = append(p.clauses, clause)
}

// where renders the WHERE clause, or "" when nothing filters.
func (p *predicate) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(p.clauses, " AND ")
}

// argsWith returns a copy of the predicate arguments followed by extra. The predicate itself is not modified.
func (p *predicate) argsWith(extra ...any) []any {
	return append(slices.Clone(p.args), extra...)
}

// compilePredicate turns a FilterSpec into a predicate. Every absent field contributes no clause.
func compilePredicate(f domain.FilterSpec) *predicate {
	p := &predicate{}
	if f.Query != "" {
		p.and("e.name ILIKE " + p.bind(containsPattern(f.Query)))
	}
	if f.Name != "" {
		p.and("e.name ILIKE " + p.bind(containsPattern(f.Name)))
	}
	if tags := domain.NormalizeTagNames(f.Tags); len(tags) > 0 {
		p.and("e.id IN (" + tagIntersection(p, tags) + ")")
	}
	if f.StartsAfter != nil {
		p.and("e.start_time >= " + p.bind(*f.StartsAfter))
	}
	if f.StartsBefore != nil {
		p.and("e.start_time <= " + p.bind(*f.StartsBefore))
	}
	if f.Status != "" {
		p.and("e.status = " + p.bind(string(f.Status)))
	}
	if f.ContributorID != "" {
		p.and("e.contributor_id = " + p.bind(f.ContributorID))
	}
	if f.SavedBy != "" {
		p.and("e.id IN (SELECT se.event_id FROM saved_events se WHERE se.user_id = " + p.bind(f.SavedBy) + ")")
	}
	return p
}

// tagIntersection returns a sub-select of event ids carrying every tag in names (all, not any).
// names must be non-empty and free of duplicates.
func tagIntersection(p *predicate, names []string) string {
	return "SELECT et.event_id FROM event_tags et JOIN tags t ON t.id = et.tag_id" +
		" WHERE t.name = ANY(" + p.bind(pq.Array(names)) + ")" +
		" GROUP BY et.event_id" +
		" HAVING COUNT(DISTINCT t.id) >= " + p.bind(len(names))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term as a literal substring.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// sortClause maps a sort key to ORDER BY. e.id breaks ties so pages are stable.
func sortClause(k domain.SortKey) string {
	switch k {
	case domain.SortPosted:
		return "ORDER BY e.created_at DESC, e.id ASC"
	case domain.SortUpdated:
		return "ORDER BY e.updated_at DESC, e.id ASC"
	case domain.SortAlphaAsc:
		return "ORDER BY e.name ASC, e.id ASC"
	case domain.SortAlphaDesc:
		return "ORDER BY e.name DESC, e.id ASC"
	default:
		return "ORDER BY e.start_time ASC, e.id ASC"
	}
}
