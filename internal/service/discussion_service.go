package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/edudigital/internal/auth"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/events"
	"github.com/spec-kit/edudigital/internal/repository"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

// DiscussionService manages course forum threads.
type DiscussionService struct {
	discussions repository.DiscussionRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NewDiscussionService builds the service.
func NewDiscussionService(discussions repository.DiscussionRepository, dispatcher events.Dispatcher, logger *zap.Logger) *DiscussionService {
	return &DiscussionService{discussions: discussions, dispatcher: dispatcher, logger: nopIfNil(logger)}
}

// ListByCourse returns pinned threads first, then newest.
func (s *DiscussionService) ListByCourse(ctx context.Context, courseID string) ([]domain.Discussion, error) {
	if strings.TrimSpace(courseID) == "" {
		return nil, apperrors.NewValidationError("courseId is required", nil)
	}
	return s.discussions.ListByCourse(ctx, courseID)
}

// Create opens a thread authored by the caller.
func (s *DiscussionService) Create(ctx context.Context, author auth.Principal, courseID, title, content string) (*domain.Discussion, error) {
	discussion := &domain.Discussion{
		CourseID: courseID,
		AuthorID: author.ID,
		Title:    strings.TrimSpace(title),
		Content:  strings.TrimSpace(content),
	}
	if discussion.Title == "" || discussion.Content == "" {
		return nil, apperrors.NewValidationError("title and content are required", nil)
	}
	if err := s.discussions.Create(ctx, discussion); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventDiscussionCreated, actorOf(author),
		events.DiscussionCreatedPayload{DiscussionID: discussion.ID, CourseID: courseID, Title: discussion.Title}))
	return discussion, nil
}
