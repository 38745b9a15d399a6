package domain

import (
	"context"
	"time"
)

// SavedEvent records that a user bookmarked an event.
// swagger:model SavedEvent
type SavedEvent struct {
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSavedEvent returns a SavedEvent for the pair, created at createdAt.
func NewSavedEvent(userID, eventID string, createdAt time.Time) *SavedEvent {
	return &SavedEvent{UserID: userID, EventID: eventID, CreatedAt: createdAt}
}

// SavedEventRepository stores saved events. Create and Delete keep events.save_count equal to
// the number of saved_events rows for the event.
type SavedEventRepository interface {
	Get(ctx context.Context, userID, eventID string) (*SavedEvent, error)
	Create(ctx context.Context, saved *SavedEvent) error
	Delete(ctx context.Context, userID, eventID string) error
}

// SavedEventService toggles a user's saved state for an event.
type SavedEventService interface {
	SaveEvent(ctx context.Context, eventID, userID string) (*SavedEvent, error)
	UnsaveEvent(ctx context.Context, eventID, userID string) error
}
