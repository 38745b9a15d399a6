package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campusevents/internal/domain"

	"github.com/lib/pq"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// unknownContributorName stands in for a contributor without a display name.
const unknownContributorName = "Unknown contributor"

const eventColumns = `e.id, e.name, e.description, e.location, e.image, e.status, e.start_time, e.end_time,
		e.created_at, e.updated_at, e.save_count, e.capacity, e.contributor_id`

const eventRowSelect = `
	SELECT ` + eventColumns + `,
		COALESCE(NULLIF(u.display_name, ''), '` + unknownContributorName + `') AS contributor_name,
		org.id, org.name, org.slug,
		ARRAY(
			SELECT t.name FROM event_tags et JOIN tags t ON t.id = et.tag_id
			WHERE et.event_id = e.id ORDER BY t.name
		) AS tags
	FROM events e
	LEFT JOIN users u ON u.id = e.contributor_id
	LEFT JOIN LATERAL (
		SELECT o.id, o.name, o.slug
		FROM event_organizations eo JOIN organizations o ON o.id = eo.org_id
		WHERE eo.event_id = e.id
		ORDER BY eo.official DESC, o.name ASC
		LIMIT 1
	) org ON TRUE
	`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetRow(ctx context.Context, id string) (*domain.EventRow, error) {
	p := &predicate{}
	p.and("e.id = " + p.bind(id))
	rows, err := queryEventRows(ctx, r.DB, eventRowSelect+p.where(), p.args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0], nil
}

// Search compiles filter once and runs the count and the page fetch against that predicate
// inside one read-only repeatable-read transaction, so both see the same snapshot.
func (r *eventRepository) Search(ctx context.Context, filter domain.FilterSpec) (*domain.SearchResult, error) {
	page := filter.Pagination.Normalize(domain.DefaultSearchPageSize)
	pred := compilePredicate(filter)

	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin search: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	total, err := countEvents(ctx, tx, pred)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	events, err := assembleEvents(ctx, tx, pred, filter.Sort, page)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("end search: %w", err)
	}
	return &domain.SearchResult{
		Events:   events,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

func (r *eventRepository) WithinTx(ctx context.Context, fn func(w domain.EventWriter) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&eventWriter{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// countEvents returns how many events match p, ignoring sort and page window.
func countEvents(ctx context.Context, q querier, p *predicate) (int, error) {
	query := `SELECT COUNT(*) AS event_count FROM events e ` + p.where()
	var n int
	if err := q.QueryRowContext(ctx, query, p.args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// assembleEvents fetches one sorted page of rows matching p.
func assembleEvents(ctx context.Context, q querier, p *predicate, sort domain.SortKey, page domain.PaginationParams) ([]*domain.EventRow, error) {
	n := len(p.args)
	query := eventRowSelect + p.where() + " " + sortClause(sort) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
	return queryEventRows(ctx, q, query, p.argsWith(page.PageSize, page.Offset())...)
}

func queryEventRows(ctx context.Context, q querier, query string, args ...any) ([]*domain.EventRow, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.EventRow, 0)
	for rows.Next() {
		row := &domain.EventRow{}
		var orgID, orgName, orgSlug sql.NullString
		var tags pq.StringArray
		e, err := scanEvent(rows, &row.ContributorName, &orgID, &orgName, &orgSlug, &tags)
		if err != nil {
			return nil, err
		}
		row.Event = *e
		row.OrganizationID = nullStringPtr(orgID)
		row.OrganizationName = nullStringPtr(orgName)
		row.OrganizationSlug = nullStringPtr(orgSlug)
		row.Tags = []string(tags)
		if row.Tags == nil {
			row.Tags = []string{}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// scanEvent scans eventColumns followed by any extra destinations.
func scanEvent(s scanner, extra ...any) (*domain.Event, error) {
	e := &domain.Event{}
	var name, desc, location, image sql.NullString
	var start, end sql.NullTime
	var capacity sql.NullInt64
	var status string
	dest := append([]any{
		&e.ID, &name, &desc, &location, &image, &status, &start, &end,
		&e.CreatedAt, &e.UpdatedAt, &e.SaveCount, &capacity, &e.ContributorID,
	}, extra...)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	e.Name = name.String
	e.Description = nullStringPtr(desc)
	e.Location = nullStringPtr(location)
	e.Image = nullStringPtr(image)
	e.Status = domain.EventStatus(status)
	if start.Valid {
		e.StartTime = &start.Time
	}
	if end.Valid {
		e.EndTime = &end.Time
	}
	e.Capacity = domain.UnlimitedCapacity
	if capacity.Valid {
		e.Capacity = int(capacity.Int64)
	}
	return e, nil
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
