package postgres

import (
	"context"
	"database/sql"

	"campusevents/internal/domain"
)

type tagRepository struct {
	DB *sql.DB
}

// NewTagRepository returns a domain.TagRepository implemented with Postgres.
func NewTagRepository(db *sql.DB) domain.TagRepository {
	return &tagRepository{DB: db}
}

func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, description, official FROM tags ORDER BY official DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTags(rows)
}

func scanTags(rows *sql.Rows) ([]*domain.Tag, error) {
	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		var tag domain.Tag
		var desc sql.NullString
		if err := rows.Scan(&tag.ID, &tag.Name, &desc, &tag.Official); err != nil {
			return nil, err
		}
		tag.Description = nullStringPtr(desc)
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
