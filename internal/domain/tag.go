package domain

import "context"

// Tag represents a named tag events can carry.
// swagger:model Tag
type Tag struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Official    bool    `json:"official"`
}

// TagRepository defines read access to the tag catalogue.
type TagRepository interface {
	List(ctx context.Context) ([]*Tag, error)
}

// TagService exposes the tag catalogue.
type TagService interface {
	ListTags(ctx context.Context) ([]*Tag, error)
}
