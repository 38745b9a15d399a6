package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// EventStatus is the publication state of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled:
		return true
	}
	return false
}

// UnlimitedCapacity marks an event without an attendance cap.
const UnlimitedCapacity = -1

// Event represents a campus event as stored.
// swagger:model Event
type Event struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   *string     `json:"description"`
	Location      *string     `json:"location"`
	Image         *string     `json:"image"`
	Status        EventStatus `json:"status"`
	StartTime     *time.Time  `json:"start_time"`
	EndTime       *time.Time  `json:"end_time"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	SaveCount     int         `json:"save_count"`
	Capacity      int         `json:"capacity"`
	ContributorID string      `json:"contributor_id"`
}

// NewEvent builds an Event for contributorID from validated input. ID is set by the repository on create.
func NewEvent(contributorID string, in *EventInput, now time.Time) *Event {
	e := &Event{ContributorID: contributorID, CreatedAt: now}
	e.Apply(in, now)
	return e
}

// Apply replaces every scalar field of e with the values from in.
func (e *Event) Apply(in *EventInput, now time.Time) {
	e.Name = strings.TrimSpace(in.Name)
	e.Description = in.Description
	e.Location = in.Location
	e.Image = in.Image
	e.Status = in.Status
	e.StartTime = in.StartTime
	e.EndTime = in.EndTime
	e.Capacity = UnlimitedCapacity
	if in.Capacity != nil {
		e.Capacity = *in.Capacity
	}
	e.UpdatedAt = now
}

// EventInput is the client payload for creating or fully replacing an event.
type EventInput struct {
	Name           string
	Description    *string
	Location       *string
	Image          *string
	Status         EventStatus
	StartTime      *time.Time
	EndTime        *time.Time
	Capacity       *int
	Tags           []string
	OrganizationID *string
}

// Normalize fills defaults and validates the input. The returned error wraps ErrInvalidInput.
func (in *EventInput) Normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = EventStatusPublished
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: status must be one of draft, published, cancelled", ErrInvalidInput)
	}
	if in.StartTime != nil && in.EndTime != nil && in.EndTime.Before(*in.StartTime) {
		return fmt.Errorf("%w: end_time must not be before start_time", ErrInvalidInput)
	}
	if in.Capacity != nil && *in.Capacity < UnlimitedCapacity {
		return fmt.Errorf("%w: capacity must be -1 (unlimited) or a non-negative number", ErrInvalidInput)
	}
	in.Tags = NormalizeTagNames(in.Tags)
	return nil
}

// EventRow is an event shaped for listing: the stored fields plus contributor,
// organization and the full tag-name list.
// swagger:model EventRow
type EventRow struct {
	Event
	ContributorName  string   `json:"contributor_name"`
	OrganizationID   *string  `json:"org_id"`
	OrganizationName *string  `json:"org_name"`
	OrganizationSlug *string  `json:"org_slug"`
	Tags             []string `json:"tags"`
}

// SearchResult is one page of matching events and the total match count.
type SearchResult struct {
	Events   []*EventRow
	Total    int
	Page     int
	PageSize int
}

// EventWriter performs the individual statements of an event write. All calls made through one
// EventWriter belong to the same unit of work.
type EventWriter interface {
	// LockEvent returns the event and holds it against concurrent writers until the unit of work ends.
	LockEvent(ctx context.Context, eventID string) (*Event, error)
	InsertEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, eventID string) error
	// ResolveTags returns the tags whose names are in names. Unknown names are absent from the result.
	ResolveTags(ctx context.Context, names []string) ([]*Tag, error)
	InsertEventTags(ctx context.Context, eventID string, tagIDs []string) error
	DeleteEventTags(ctx context.Context, eventID string) error
	AttachOrganization(ctx context.Context, eventID, orgID string, official bool) error
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
	GetRow(ctx context.Context, id string) (*EventRow, error)
	// Search counts and fetches one page of events matching filter from a single snapshot.
	Search(ctx context.Context, filter FilterSpec) (*SearchResult, error)
	// WithinTx runs fn in one transaction; any error from fn rolls back every write made through w.
	WithinTx(ctx context.Context, fn func(w EventWriter) error) error
}

// EventService defines event discovery and mutation.
type EventService interface {
	SearchEvents(ctx context.Context, filter FilterSpec) (*SearchResult, error)
	GetEvent(ctx context.Context, eventID string) (*EventRow, error)
	CreateEvent(ctx context.Context, contributorID string, in *EventInput) (string, error)
	UpdateEvent(ctx context.Context, eventID, contributorID string, in *EventInput) error
	DeleteEvent(ctx context.Context, eventID, contributorID string) error
}
