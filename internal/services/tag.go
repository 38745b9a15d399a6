package services

import (
	"context"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

type tagService struct {
	tagRepo        domain.TagRepository
	contextTimeout time.Duration
}

func NewTagService(tagRepo domain.TagRepository, timeout time.Duration) domain.TagService {
	return &tagService{tagRepo: tagRepo, contextTimeout: timeout}
}

func (s *tagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if tags == nil {
		tags = []*domain.Tag{}
	}
	return tags, nil
}
