package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/edudigital/internal/auth"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/events"
	"github.com/spec-kit/edudigital/internal/repository"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

// EnrollmentService manages student enrollments and the wishlist.
type EnrollmentService struct {
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
	wishlist    repository.WishlistRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// EnrollmentDependencies encapsulates collaborators for the enrollment service.
type EnrollmentDependencies struct {
	CourseRepo     repository.CourseRepository
	EnrollmentRepo repository.EnrollmentRepository
	WishlistRepo   repository.WishlistRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// NewEnrollmentService builds the service.
func NewEnrollmentService(deps EnrollmentDependencies) *EnrollmentService {
	return &EnrollmentService{
		courses:     deps.CourseRepo,
		enrollments: deps.EnrollmentRepo,
		wishlist:    deps.WishlistRepo,
		dispatcher:  deps.Dispatcher,
		logger:      nopIfNil(deps.Logger),
	}
}

// Enroll registers the student in a published course.
func (s *EnrollmentService) Enroll(ctx context.Context, student auth.Principal, courseID string) (*domain.Enrollment, error) {
	if err := s.requirePublished(ctx, courseID); err != nil {
		return nil, err
	}

	enrollment := &domain.Enrollment{StudentID: student.ID, CourseID: courseID}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("already enrolled in this course", map[string]any{"courseId": courseID})
		}
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventEnrollmentCreated, actorOf(student),
		events.EnrollmentCreatedPayload{EnrollmentID: enrollment.ID, CourseID: courseID}))
	return enrollment, nil
}

// ListEnrollments returns the student's courses with progress.
func (s *EnrollmentService) ListEnrollments(ctx context.Context, student auth.Principal) ([]domain.EnrollmentDetail, error) {
	return s.enrollments.ListByStudent(ctx, student.ID)
}

// AddToWishlist bookmarks a published course.
func (s *EnrollmentService) AddToWishlist(ctx context.Context, student auth.Principal, courseID string) (*domain.WishlistItem, error) {
	if err := s.requirePublished(ctx, courseID); err != nil {
		return nil, err
	}
	item := &domain.WishlistItem{StudentID: student.ID, CourseID: courseID}
	if err := s.wishlist.Add(ctx, item); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("course already in wishlist", map[string]any{"courseId": courseID})
		}
		return nil, err
	}
	return item, nil
}

// RemoveFromWishlist drops a bookmark.
func (s *EnrollmentService) RemoveFromWishlist(ctx context.Context, student auth.Principal, courseID string) error {
	if err := s.wishlist.Remove(ctx, student.ID, courseID); err != nil {
		return notFound(err, "wishlist item")
	}
	return nil
}

// ListWishlist returns the student's bookmarks.
func (s *EnrollmentService) ListWishlist(ctx context.Context, student auth.Principal) ([]domain.WishlistItem, error) {
	return s.wishlist.ListByStudent(ctx, student.ID)
}

func (s *EnrollmentService) requirePublished(ctx context.Context, courseID string) error {
	course, err := s.courses.GetSummary(ctx, courseID)
	if err != nil {
		return notFound(err, "course")
	}
	if !course.Published {
		return apperrors.NewNotFound("course", nil)
	}
	return nil
}
