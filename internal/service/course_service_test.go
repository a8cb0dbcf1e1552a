package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/edudigital/internal/auth"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/events"
)

var alice = auth.Principal{Subject: "alice@example.com", Role: domain.RoleTeacher, ID: "teacher-alice"}

func TestNormalizeFilter(t *testing.T) {
	tests := []struct {
		name string
		in   domain.CourseFilter
		want domain.CourseFilter
	}{
		{name: "defaults", in: domain.CourseFilter{}, want: domain.CourseFilter{Page: 1, Limit: 10}},
		{name: "caps limit", in: domain.CourseFilter{Page: 3, Limit: 500}, want: domain.CourseFilter{Page: 3, Limit: 100}},
		{name: "trims filters", in: domain.CourseFilter{Category: " web ", Level: "beginner ", Page: 2, Limit: 5},
			want: domain.CourseFilter{Category: "web", Level: "beginner", Page: 2, Limit: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeFilter(tt.in))
		})
	}
}

func TestCourseService_ListCatalogNormalizes(t *testing.T) {
	ctx := context.Background()
	courses := new(MockCourseRepository)
	svc := NewCourseService(courses, nil, nil)

	courses.On("ListPublished", ctx, domain.CourseFilter{Page: 1, Limit: 10}).Return([]domain.CourseSummary{}, nil)

	list, err := svc.ListCatalog(ctx, domain.CourseFilter{Page: -4})
	require.NoError(t, err)
	assert.Empty(t, list)
	courses.AssertExpectations(t)
}

func TestCourseService_GetCourse(t *testing.T) {
	ctx := context.Background()
	courses := new(MockCourseRepository)
	svc := NewCourseService(courses, nil, nil)

	summary := &domain.CourseSummary{Course: domain.Course{ID: "c-1", Title: "Go 101"}}
	modules := []domain.CourseModule{{ID: "m-1", CourseID: "c-1", Title: "Intro"}}
	courses.On("GetSummary", ctx, "c-1").Return(summary, nil)
	courses.On("ListModules", ctx, "c-1").Return(modules, nil)
	courses.On("GetSummary", ctx, "missing").Return(nil, pgx.ErrNoRows)

	detail, err := svc.GetCourse(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Go 101", detail.Title)
	assert.Equal(t, modules, detail.Modules)

	_, err = svc.GetCourse(ctx, "missing")
	requireStatus(t, err, http.StatusNotFound)
}

func TestCourseService_CreateCourseOwnedByCaller(t *testing.T) {
	ctx := context.Background()
	courses := new(MockCourseRepository)
	dispatcher := &recordingDispatcher{}
	svc := NewCourseService(courses, dispatcher, nil)

	courses.On("Create", ctx, mock.MatchedBy(func(c *domain.Course) bool {
		return c.TeacherID == alice.ID && c.Title == "Go 101" && c.Level == domain.LevelBeginner
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Course).ID = "c-new"
	}).Return(nil)

	course, err := svc.CreateCourse(ctx, alice, CourseInput{Title: "  Go 101 ", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, "c-new", course.ID)
	assert.Equal(t, []events.EventType{events.EventCourseCreated}, dispatcher.types())
	courses.AssertExpectations(t)
}

func TestCourseService_ForeignCourseIsNotFound(t *testing.T) {
	ctx := context.Background()
	courses := new(MockCourseRepository)
	svc := NewCourseService(courses, nil, nil)

	courses.On("GetForTeacher", ctx, "c-bob", alice.ID).Return(nil, pgx.ErrNoRows)
	courses.On("Update", ctx, mock.Anything).Return(pgx.ErrNoRows)
	courses.On("Delete", ctx, "c-bob", alice.ID).Return(pgx.ErrNoRows)

	_, err := svc.GetTeacherCourse(ctx, alice, "c-bob")
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.UpdateCourse(ctx, alice, "c-bob", CourseInput{Title: "Hijack"})
	requireStatus(t, err, http.StatusNotFound)

	requireStatus(t, svc.DeleteCourse(ctx, alice, "c-bob"), http.StatusNotFound)

	_, err = svc.AddModule(ctx, alice, "c-bob", "Stolen", 1)
	requireStatus(t, err, http.StatusNotFound)
	courses.AssertNotCalled(t, "CreateModule", mock.Anything, mock.Anything)
}

func TestCourseService_AddLessonInheritsCourse(t *testing.T) {
	ctx := context.Background()
	courses := new(MockCourseRepository)
	svc := NewCourseService(courses, nil, nil)

	courses.On("GetModuleForTeacher", ctx, "m-1", alice.ID).
		Return(&domain.CourseModule{ID: "m-1", CourseID: "c-1", Title: "Intro", OrderIndex: 1}, nil)
	courses.On("CreateLesson", ctx, mock.MatchedBy(func(l *domain.Lesson) bool {
		return l.ModuleID == "m-1" && l.CourseID == "c-1" && l.Title == "Variables"
	})).Return(nil)

	lesson, err := svc.AddLesson(ctx, alice, "m-1", LessonInput{Title: "Variables", DurationMinutes: 12})
	require.NoError(t, err)
	assert.Equal(t, "Intro", lesson.ModuleTitle)
	courses.AssertExpectations(t)
}
