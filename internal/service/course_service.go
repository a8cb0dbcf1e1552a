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

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CourseService serves the public catalog and teacher course management.
type CourseService struct {
	courses    repository.CourseRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// CourseInput carries the editable course fields.
type CourseInput struct {
	Title         string
	Description   string
	Category      string
	Level         domain.CourseLevel
	Price         float64
	DurationHours int
	ImageURL      *string
	Published     bool
}

// LessonInput carries a new lesson.
type LessonInput struct {
	Title           string
	Content         string
	VideoURL        *string
	DurationMinutes int
	OrderIndex      int
}

// CourseDetail is a catalog course with its modules.
type CourseDetail struct {
	domain.CourseSummary
	Modules []domain.CourseModule
}

// NewCourseService builds the service.
func NewCourseService(courses repository.CourseRepository, dispatcher events.Dispatcher, logger *zap.Logger) *CourseService {
	return &CourseService{courses: courses, dispatcher: dispatcher, logger: nopIfNil(logger)}
}

// NormalizeFilter applies paging defaults and bounds.
func NormalizeFilter(filter domain.CourseFilter) domain.CourseFilter {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Level = strings.TrimSpace(filter.Level)
	return filter
}

// ListCatalog returns published courses.
func (s *CourseService) ListCatalog(ctx context.Context, filter domain.CourseFilter) ([]domain.CourseSummary, error) {
	return s.courses.ListPublished(ctx, NormalizeFilter(filter))
}

// GetCourse returns a course with its modules.
func (s *CourseService) GetCourse(ctx context.Context, id string) (*CourseDetail, error) {
	summary, err := s.courses.GetSummary(ctx, id)
	if err != nil {
		return nil, notFound(err, "course")
	}
	modules, err := s.courses.ListModules(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CourseDetail{CourseSummary: *summary, Modules: modules}, nil
}

// ListLessons returns the lessons of a course in reading order.
func (s *CourseService) ListLessons(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	return s.courses.ListLessons(ctx, courseID)
}

// ListTeacherCourses returns the teacher's own courses with counters.
func (s *CourseService) ListTeacherCourses(ctx context.Context, teacher auth.Principal) ([]domain.TeacherCourse, error) {
	return s.courses.ListByTeacher(ctx, teacher.ID)
}

// GetTeacherCourse returns a course only to its owner.
func (s *CourseService) GetTeacherCourse(ctx context.Context, teacher auth.Principal, id string) (*domain.Course, error) {
	course, err := s.courses.GetForTeacher(ctx, id, teacher.ID)
	if err != nil {
		return nil, notFound(err, "course")
	}
	return course, nil
}

// CreateCourse stores a course owned by the teacher.
func (s *CourseService) CreateCourse(ctx context.Context, teacher auth.Principal, in CourseInput) (*domain.Course, error) {
	course := courseFromInput(in)
	course.TeacherID = teacher.ID
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventCourseCreated, actorOf(teacher),
		events.CourseCreatedPayload{CourseID: course.ID, Title: course.Title, Published: course.Published}))
	return course, nil
}

// UpdateCourse replaces the editable fields of an owned course.
func (s *CourseService) UpdateCourse(ctx context.Context, teacher auth.Principal, id string, in CourseInput) (*domain.Course, error) {
	course := courseFromInput(in)
	course.ID = id
	course.TeacherID = teacher.ID
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, notFound(err, "course")
	}
	return course, nil
}

// DeleteCourse removes an owned course.
func (s *CourseService) DeleteCourse(ctx context.Context, teacher auth.Principal, id string) error {
	if err := s.courses.Delete(ctx, id, teacher.ID); err != nil {
		return notFound(err, "course")
	}
	return nil
}

// AddModule appends a module to an owned course.
func (s *CourseService) AddModule(ctx context.Context, teacher auth.Principal, courseID, title string, order int) (*domain.CourseModule, error) {
	if _, err := s.courses.GetForTeacher(ctx, courseID, teacher.ID); err != nil {
		return nil, notFound(err, "course")
	}
	module := &domain.CourseModule{CourseID: courseID, Title: strings.TrimSpace(title), OrderIndex: order}
	if err := s.courses.CreateModule(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

// AddLesson appends a lesson to a module of an owned course.
func (s *CourseService) AddLesson(ctx context.Context, teacher auth.Principal, moduleID string, in LessonInput) (*domain.Lesson, error) {
	module, err := s.courses.GetModuleForTeacher(ctx, moduleID, teacher.ID)
	if err != nil {
		return nil, notFound(err, "module")
	}
	lesson := &domain.Lesson{
		ModuleID:        module.ID,
		CourseID:        module.CourseID,
		Title:           strings.TrimSpace(in.Title),
		Content:         in.Content,
		VideoURL:        in.VideoURL,
		DurationMinutes: in.DurationMinutes,
		OrderIndex:      in.OrderIndex,
		ModuleTitle:     module.Title,
		ModuleOrder:     module.OrderIndex,
	}
	if err := s.courses.CreateLesson(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func courseFromInput(in CourseInput) *domain.Course {
	level := in.Level
	if level == "" {
		level = domain.LevelBeginner
	}
	return &domain.Course{
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Category:      strings.TrimSpace(in.Category),
		Level:         level,
		Price:         in.Price,
		DurationHours: in.DurationHours,
		ImageURL:      in.ImageURL,
		Published:     in.Published,
	}
}

// notFound converts an empty-result error into a 404 for resource.
func notFound(err error, resource string) error {
	if apperrors.IsNoRows(err) {
		return apperrors.NewNotFound(resource, nil)
	}
	return err
}
