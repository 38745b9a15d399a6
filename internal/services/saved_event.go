package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

type savedEventService struct {
	eventRepo      domain.EventRepository
	savedRepo      domain.SavedEventRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewSavedEventService creates a SavedEventService with the given repositories.
func NewSavedEventService(
	eventRepo domain.EventRepository,
	savedRepo domain.SavedEventRepository,
	timeout time.Duration,
) domain.SavedEventService {
	return &savedEventService{
		eventRepo:      eventRepo,
		savedRepo:      savedRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *savedEventService) SaveEvent(ctx context.Context, eventID, userID string) (*domain.SavedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}

	if _, err := s.savedRepo.Get(ctx, userID, eventID); err == nil {
		return nil, domain.ErrAlreadySaved
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get saved event: %w", err)
	}

	saved := domain.NewSavedEvent(userID, eventID, s.now())
	if err := s.savedRepo.Create(ctx, saved); err != nil {
		// A concurrent save or delete can win the race past the checks above.
		if errors.Is(err, domain.ErrAlreadySaved) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create saved event: %w", err)
	}
	return saved, nil
}

func (s *savedEventService) UnsaveEvent(ctx context.Context, eventID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureEvent(ctx, eventID); err != nil {
		return err
	}

	if _, err := s.savedRepo.Get(ctx, userID, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotSaved
		}
		return fmt.Errorf("get saved event: %w", err)
	}

	if err := s.savedRepo.Delete(ctx, userID, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotSaved
		}
		return fmt.Errorf("delete saved event: %w", err)
	}
	return nil
}

func (s *savedEventService) ensureEvent(ctx context.Context, eventID string) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	return nil
}
