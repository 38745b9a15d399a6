package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campusevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	orgRepo        domain.OrganizationRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(eventRepo domain.EventRepository,
	orgRepo domain.OrganizationRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		orgRepo:        orgRepo,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) SearchEvents(ctx context.Context, filter domain.FilterSpec) (*domain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	res, err := s.eventRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return res, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.EventRow, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	row, err := s.eventRepo.GetRow(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return row, nil
}

// CreateEvent persists the event, its tags and its organization link as one unit.
// Any failing step leaves no trace of the event behind.
func (s *eventService) CreateEvent(ctx context.Context, contributorID string, in *domain.EventInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if contributorID == "" {
		return "", fmt.Errorf("%w: contributor is required", domain.ErrInvalidInput)
	}
	if err := in.Normalize(); err != nil {
		return "", err
	}
	if in.OrganizationID != nil {
		if _, err := s.orgRepo.GetByID(ctx, *in.OrganizationID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return "", domain.ErrOrganizationNotFound
			}
			return "", fmt.Errorf("get organization: %w", err)
		}
	}

	event := domain.NewEvent(contributorID, in, s.now())
	err := s.eventRepo.WithinTx(ctx, func(w domain.EventWriter) error {
		if err := w.InsertEvent(ctx, event); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		if err := s.attachTags(ctx, w, event.ID, in.Tags); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrTagAttachFailed, err)
		}
		if in.OrganizationID != nil {
			if err := w.AttachOrganization(ctx, event.ID, *in.OrganizationID, false); err != nil {
				return fmt.Errorf("%w: %w", domain.ErrOrganizationLinkFailed, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}
	return event.ID, nil
}

// UpdateEvent fully replaces the event's fields and tag set. Organization links are left as they are.
// The contributor check runs before the input is validated, so a non-owner always gets ErrForbidden.
func (s *eventService) UpdateEvent(ctx context.Context, eventID, contributorID string, in *domain.EventInput) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := s.eventRepo.WithinTx(ctx, func(w domain.EventWriter) error {
		event, err := w.LockEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if event.ContributorID != contributorID {
			return domain.ErrForbidden
		}
		if err := in.Normalize(); err != nil {
			return err
		}

		event.Apply(in, s.now())
		if err := w.UpdateEvent(ctx, event); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		if err := w.DeleteEventTags(ctx, eventID); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrTagAttachFailed, err)
		}
		if err := s.attachTags(ctx, w, eventID, in.Tags); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrTagAttachFailed, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("update event %s: %w", eventID, err)
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID, contributorID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := s.eventRepo.WithinTx(ctx, func(w domain.EventWriter) error {
		event, err := w.LockEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if event.ContributorID != contributorID {
			return domain.ErrForbidden
		}
		return w.DeleteEvent(ctx, eventID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden) {
			return err
		}
		return fmt.Errorf("delete event %s: %w", eventID, err)
	}
	return nil
}

// attachTags links eventID to the known tags among names. Unknown names are skipped and logged.
func (s *eventService) attachTags(ctx context.Context, w domain.EventWriter, eventID string, names []string) error {
	if len(names) == 0 {
		return nil
	}
	tags, err := w.ResolveTags(ctx, names)
	if err != nil {
		return fmt.Errorf("resolve tags: %w", err)
	}

	known := make(map[string]struct{}, len(tags))
	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		known[t.Name] = struct{}{}
		ids = append(ids, t.ID)
	}
	for _, name := range names {
		if _, ok := known[name]; !ok {
			s.logger.WarnContext(ctx, "dropping unknown tag", "event_id", eventID, "tag", name)
		}
	}

	if err := w.InsertEventTags(ctx, eventID, ids); err != nil {
		return fmt.Errorf("insert event tags: %w", err)
	}
	return nil
}
