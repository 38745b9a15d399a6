package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campusevents/internal/domain"

	"github.com/lib/pq"
)

// pqUniqueViolation is the SQLSTATE for unique_violation.
const pqUniqueViolation = "23505"

// syncSaveCountQuery derives events.save_count from the saved_events rows, which are authoritative.
const syncSaveCountQuery = `
	UPDATE events
	SET save_count = (SELECT COUNT(*) FROM saved_events WHERE event_id = $1)
	WHERE id = $1
`

type savedEventRepository struct {
	DB *sql.DB
}

func NewSavedEventRepository(db *sql.DB) domain.SavedEventRepository {
	return &savedEventRepository{
		DB: db,
	}
}

func (r *savedEventRepository) Get(ctx context.Context, userID, eventID string) (*domain.SavedEvent, error) {
	query := `
		SELECT user_id, event_id, created_at
		FROM saved_events
		WHERE user_id = $1 AND event_id = $2
	`
	saved := &domain.SavedEvent{}
	err := r.DB.QueryRowContext(ctx, query, userID, eventID).
		Scan(&saved.UserID, &saved.EventID, &saved.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func (r *savedEventRepository) Create(ctx context.Context, saved *domain.SavedEvent) error {
	return r.withCountSync(ctx, saved.EventID, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO saved_events (user_id, event_id, created_at) VALUES ($1, $2, $3)`,
			saved.UserID, saved.EventID, saved.CreatedAt)
		if err != nil {
			var perr *pq.Error
			if errors.As(err, &perr) {
				switch perr.Code {
				case pqUniqueViolation:
					return domain.ErrAlreadySaved
				case pqForeignKeyViolation:
					// The event was deleted after the caller looked it up.
					return domain.ErrNotFound
				}
			}
			return err
		}
		return nil
	})
}

func (r *savedEventRepository) Delete(ctx context.Context, userID, eventID string) error {
	return r.withCountSync(ctx, eventID, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`DELETE FROM saved_events WHERE user_id = $1 AND event_id = $2`, userID, eventID)
		if err != nil {
			return err
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// withCountSync runs write and the save_count resync for eventID in one transaction.
func (r *savedEventRepository) withCountSync(ctx context.Context, eventID string, write func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := write(tx); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, syncSaveCountQuery, eventID); err != nil {
		return fmt.Errorf("sync save count: %w", err)
	}
	return tx.Commit()
}
