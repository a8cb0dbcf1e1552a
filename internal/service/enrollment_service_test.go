package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/edudigital/internal/auth"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/events"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

var sam = auth.Principal{Subject: "sam@example.com", Role: domain.RoleStudent, ID: "student-sam"}

var uniqueViolation = &pgconn.PgError{Code: "23505"}

func newTestEnrollmentService() (*EnrollmentService, *MockCourseRepository, *MockEnrollmentRepository, *MockWishlistRepository, *recordingDispatcher) {
	courses := new(MockCourseRepository)
	enrollments := new(MockEnrollmentRepository)
	wishlist := new(MockWishlistRepository)
	dispatcher := &recordingDispatcher{}
	svc := NewEnrollmentService(EnrollmentDependencies{
		CourseRepo:     courses,
		EnrollmentRepo: enrollments,
		WishlistRepo:   wishlist,
		Dispatcher:     dispatcher,
	})
	return svc, courses, enrollments, wishlist, dispatcher
}

func publishedCourse(id string) *domain.CourseSummary {
	return &domain.CourseSummary{Course: domain.Course{ID: id, Published: true}}
}

func TestEnrollmentService_Enroll(t *testing.T) {
	ctx := context.Background()
	svc, courses, enrollments, _, dispatcher := newTestEnrollmentService()

	courses.On("GetSummary", ctx, "c-1").Return(publishedCourse("c-1"), nil)
	enrollments.On("Create", ctx, mock.MatchedBy(func(e *domain.Enrollment) bool {
		return e.StudentID == sam.ID && e.CourseID == "c-1"
	})).Return(nil).Once()

	enrollment, err := svc.Enroll(ctx, sam, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", enrollment.CourseID)
	assert.Equal(t, []events.EventType{events.EventEnrollmentCreated}, dispatcher.types())
}

func TestEnrollmentService_EnrollTwiceIsBadRequest(t *testing.T) {
	ctx := context.Background()
	svc, courses, enrollments, _, dispatcher := newTestEnrollmentService()

	courses.On("GetSummary", ctx, "c-1").Return(publishedCourse("c-1"), nil)
	enrollments.On("Create", ctx, mock.Anything).Return(uniqueViolation)

	_, err := svc.Enroll(ctx, sam, "c-1")
	requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "already enrolled in this course", apperrors.ToDomainError(err).Message)
	assert.Empty(t, dispatcher.types())
}

func TestEnrollmentService_EnrollRequiresPublishedCourse(t *testing.T) {
	ctx := context.Background()
	svc, courses, enrollments, _, _ := newTestEnrollmentService()

	courses.On("GetSummary", ctx, "draft").Return(&domain.CourseSummary{Course: domain.Course{ID: "draft"}}, nil)
	courses.On("GetSummary", ctx, "gone").Return(nil, pgx.ErrNoRows)

	_, err := svc.Enroll(ctx, sam, "draft")
	requireStatus(t, err, http.StatusNotFound)
	_, err = svc.Enroll(ctx, sam, "gone")
	requireStatus(t, err, http.StatusNotFound)
	enrollments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnrollmentService_Wishlist(t *testing.T) {
	ctx := context.Background()
	svc, courses, _, wishlist, _ := newTestEnrollmentService()

	courses.On("GetSummary", ctx, "c-1").Return(publishedCourse("c-1"), nil)
	wishlist.On("Add", ctx, mock.Anything).Return(nil).Once()
	wishlist.On("Add", ctx, mock.Anything).Return(uniqueViolation).Once()
	wishlist.On("Remove", ctx, sam.ID, "c-1").Return(nil).Once()
	wishlist.On("Remove", ctx, sam.ID, "c-1").Return(pgx.ErrNoRows).Once()

	_, err := svc.AddToWishlist(ctx, sam, "c-1")
	require.NoError(t, err)
	_, err = svc.AddToWishlist(ctx, sam, "c-1")
	requireStatus(t, err, http.StatusConflict)

	require.NoError(t, svc.RemoveFromWishlist(ctx, sam, "c-1"))
	requireStatus(t, svc.RemoveFromWishlist(ctx, sam, "c-1"), http.StatusNotFound)
	wishlist.AssertExpectations(t)
}
