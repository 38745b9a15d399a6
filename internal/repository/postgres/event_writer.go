package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campusevents/internal/domain"

	"github.com/lib/pq"
)

// pqForeignKeyViolation is the SQLSTATE for foreign_key_violation.
const pqForeignKeyViolation = "23503"

// eventWriter issues the statements of an event write against one transaction.
type eventWriter struct {
	q querier
}

func (w *eventWriter) LockEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1 FOR UPDATE`
	e, err := scanEvent(w.q.QueryRowContext(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (w *eventWriter) InsertEvent(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, description, location, image, status, start_time, end_time,
			capacity, contributor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return w.q.QueryRowContext(ctx, query,
		e.Name, e.Description, e.Location, e.Image, string(e.Status), e.StartTime, e.EndTime,
		e.Capacity, e.ContributorID, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (w *eventWriter) UpdateEvent(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $2, description = $3, location = $4, image = $5, status = $6,
			start_time = $7, end_time = $8, capacity = $9, updated_at = $10
		WHERE id = $1
	`
	result, err := w.q.ExecContext(ctx, query,
		e.ID, e.Name, e.Description, e.Location, e.Image, string(e.Status),
		e.StartTime, e.EndTime, e.Capacity, e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (w *eventWriter) DeleteEvent(ctx context.Context, eventID string) error {
	result, err := w.q.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (w *eventWriter) ResolveTags(ctx context.Context, names []string) ([]*domain.Tag, error) {
	if len(names) == 0 {
		return []*domain.Tag{}, nil
	}
	rows, err := w.q.QueryContext(ctx,
		`SELECT id, name, description, official FROM tags WHERE name = ANY($1) ORDER BY name`,
		pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTags(rows)
}

func (w *eventWriter) InsertEventTags(ctx context.Context, eventID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := w.q.ExecContext(ctx,
		`INSERT INTO event_tags (event_id, tag_id) SELECT $1, unnest($2::uuid[])`,
		eventID, pq.Array(tagIDs))
	return err
}

func (w *eventWriter) DeleteEventTags(ctx context.Context, eventID string) error {
	_, err := w.q.ExecContext(ctx, `DELETE FROM event_tags WHERE event_id = $1`, eventID)
	return err
}

func (w *eventWriter) AttachOrganization(ctx context.Context, eventID, orgID string, official bool) error {
	_, err := w.q.ExecContext(ctx,
		`INSERT INTO event_organizations (event_id, org_id, official) VALUES ($1, $2, $3)`,
		eventID, orgID, official)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == pqForeignKeyViolation {
			return domain.ErrOrganizationNotFound
		}
		return err
	}
	return nil
}
