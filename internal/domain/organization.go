package domain

import "context"

// Organization is a student organization that can be linked to events.
// swagger:model Organization
type Organization struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

// OrganizationRepository defines the organization lookups events need.
type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (*Organization, error)
}
