package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/events"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, update)
	if user := args.Get(0); user != nil {
		return user.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, role *domain.Role, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, role, limit, offset)
	if users := args.Get(0); users != nil {
		return users.([]domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPasswordResetRepository struct {
	mock.Mock
}

func (m *MockPasswordResetRepository) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return m.Called(ctx, token, userID, ttl).Error(0)
}

func (m *MockPasswordResetRepository) Consume(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) ListPublished(ctx context.Context, filter domain.CourseFilter) ([]domain.CourseSummary, error) {
	args := m.Called(ctx, filter)
	if courses := args.Get(0); courses != nil {
		return courses.([]domain.CourseSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) GetSummary(ctx context.Context, id string) (*domain.CourseSummary, error) {
	args := m.Called(ctx, id)
	if course := args.Get(0); course != nil {
		return course.(*domain.CourseSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) ListModules(ctx context.Context, courseID string) ([]domain.CourseModule, error) {
	args := m.Called(ctx, courseID)
	if modules := args.Get(0); modules != nil {
		return modules.([]domain.CourseModule), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) ListLessons(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	args := m.Called(ctx, courseID)
	if lessons := args.Get(0); lessons != nil {
		return lessons.([]domain.Lesson), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) ListByTeacher(ctx context.Context, teacherID string) ([]domain.TeacherCourse, error) {
	args := m.Called(ctx, teacherID)
	if courses := args.Get(0); courses != nil {
		return courses.([]domain.TeacherCourse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) GetForTeacher(ctx context.Context, id, teacherID string) (*domain.Course, error) {
	args := m.Called(ctx, id, teacherID)
	if course := args.Get(0); course != nil {
		return course.(*domain.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *MockCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id, teacherID string) error {
	return m.Called(ctx, id, teacherID).Error(0)
}

func (m *MockCourseRepository) CreateModule(ctx context.Context, module *domain.CourseModule) error {
	return m.Called(ctx, module).Error(0)
}

func (m *MockCourseRepository) GetModuleForTeacher(ctx context.Context, moduleID, teacherID string) (*domain.CourseModule, error) {
	args := m.Called(ctx, moduleID, teacherID)
	if module := args.Get(0); module != nil {
		return module.(*domain.CourseModule), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) CreateLesson(ctx context.Context, lesson *domain.Lesson) error {
	return m.Called(ctx, lesson).Error(0)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}

func (m *MockEnrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.EnrollmentDetail, error) {
	args := m.Called(ctx, studentID)
	if enrollments := args.Get(0); enrollments != nil {
		return enrollments.([]domain.EnrollmentDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEnrollmentRepository) IsEnrolled(ctx context.Context, studentID, courseID string) (bool, error) {
	args := m.Called(ctx, studentID, courseID)
	return args.Bool(0), args.Error(1)
}

type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Add(ctx context.Context, item *domain.WishlistItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockWishlistRepository) Remove(ctx context.Context, studentID, courseID string) error {
	return m.Called(ctx, studentID, courseID).Error(0)
}

func (m *MockWishlistRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.WishlistItem, error) {
	args := m.Called(ctx, studentID)
	if items := args.Get(0); items != nil {
		return items.([]domain.WishlistItem), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Create(ctx context.Context, quiz *domain.Quiz) error {
	return m.Called(ctx, quiz).Error(0)
}

func (m *MockQuizRepository) GetWithQuestions(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if quiz := args.Get(0); quiz != nil {
		return quiz.(*domain.Quiz), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizRepository) CreateSubmission(ctx context.Context, submission *domain.QuizSubmission) error {
	return m.Called(ctx, submission).Error(0)
}

type MockDiscussionRepository struct {
	mock.Mock
}

func (m *MockDiscussionRepository) Create(ctx context.Context, discussion *domain.Discussion) error {
	return m.Called(ctx, discussion).Error(0)
}

func (m *MockDiscussionRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.Discussion, error) {
	args := m.Called(ctx, courseID)
	if discussions := args.Get(0); discussions != nil {
		return discussions.([]domain.Discussion), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountUsers(ctx context.Context, role *domain.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountCourses(ctx context.Context, publishedOnly bool) (int64, error) {
	args := m.Called(ctx, publishedOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountEnrollments(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

// recordingDispatcher keeps every published event.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.EventType, 0, len(d.events))
	for _, e := range d.events {
		out = append(out, e.Type)
	}
	return out
}
