package dto

import (
	"time"

	"github.com/spec-kit/edudigital/internal/domain"
)

// CourseRequest payload for creating or updating a course.
type CourseRequest struct {
	Title         string  `json:"title" validate:"notblank,max=200"`
	Description   string  `json:"description" validate:"max=10000"`
	Category      string  `json:"category" validate:"notblank,max=100"`
	Level         string  `json:"level" validate:"omitempty,course_level"`
	Price         float64 `json:"price" validate:"gte=0"`
	DurationHours int     `json:"durationHours" validate:"gte=0"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,url"`
	Published     bool    `json:"published"`
}

// ModuleRequest payload for POST /teacher/courses/:id/modules.
type ModuleRequest struct {
	Title      string `json:"title" validate:"notblank,max=200"`
	OrderIndex int    `json:"orderIndex" validate:"gte=0"`
}

// LessonRequest payload for POST /teacher/modules/:id/lessons.
type LessonRequest struct {
	Title           string  `json:"title" validate:"notblank,max=200"`
	Content         string  `json:"content"`
	VideoURL        *string `json:"videoUrl" validate:"omitempty,url"`
	DurationMinutes int     `json:"durationMinutes" validate:"gte=0"`
	OrderIndex      int     `json:"orderIndex" validate:"gte=0"`
}

// CourseResponse is the owner's view of a course.
type CourseResponse struct {
	ID             string    `json:"id"`
	TeacherID      string    `json:"teacherId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Level          string    `json:"level"`
	Price          float64   `json:"price"`
	DurationHours  int       `json:"durationHours"`
	ImageURL       *string   `json:"imageUrl,omitempty"`
	Published      bool      `json:"published"`
	StudentCount   *int64    `json:"studentCount,omitempty"`
	CompletedCount *int64    `json:"completedCount,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CourseSummaryResponse is the catalog view of a course.
type CourseSummaryResponse struct {
	CourseResponse
	TeacherFirstName string           `json:"teacherFirstName"`
	TeacherLastName  string           `json:"teacherLastName"`
	TeacherAvatarURL *string          `json:"teacherAvatarUrl,omitempty"`
	StudentCount     int64            `json:"studentCount"`
	AverageRating    float64          `json:"averageRating"`
	Modules          []ModuleResponse `json:"modules,omitempty"`
}

// ModuleResponse describes a course module.
type ModuleResponse struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId"`
	Title       string `json:"title"`
	OrderIndex  int    `json:"orderIndex"`
	LessonCount int64  `json:"lessonCount"`
}

// LessonResponse describes a lesson.
type LessonResponse struct {
	ID              string  `json:"id"`
	ModuleID        string  `json:"moduleId"`
	CourseID        string  `json:"courseId"`
	Title           string  `json:"title"`
	Content         string  `json:"content"`
	VideoURL        *string `json:"videoUrl,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	OrderIndex      int     `json:"orderIndex"`
	ModuleTitle     string  `json:"moduleTitle"`
	ModuleOrder     int     `json:"moduleOrder"`
}

// NewCourseResponse maps a domain course.
func NewCourseResponse(c *domain.Course) CourseResponse {
	return CourseResponse{
		ID:            c.ID,
		TeacherID:     c.TeacherID,
		Title:         c.Title,
		Description:   c.Description,
		Category:      c.Category,
		Level:         string(c.Level),
		Price:         c.Price,
		DurationHours: c.DurationHours,
		ImageURL:      c.ImageURL,
		Published:     c.Published,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// NewTeacherCourseResponse adds the dashboard counters.
func NewTeacherCourseResponse(tc *domain.TeacherCourse) CourseResponse {
	resp := NewCourseResponse(&tc.Course)
	students, completed := tc.StudentCount, tc.CompletedCount
	resp.StudentCount = &students
	resp.CompletedCount = &completed
	return resp
}

// NewCourseSummaryResponse maps a catalog entry.
func NewCourseSummaryResponse(s *domain.CourseSummary, modules []domain.CourseModule) CourseSummaryResponse {
	resp := CourseSummaryResponse{
		CourseResponse:   NewCourseResponse(&s.Course),
		TeacherFirstName: s.TeacherFirstName,
		TeacherLastName:  s.TeacherLastName,
		TeacherAvatarURL: s.TeacherAvatarURL,
		StudentCount:     s.StudentCount,
		AverageRating:    s.AverageRating,
	}
	for i := range modules {
		resp.Modules = append(resp.Modules, NewModuleResponse(&modules[i]))
	}
	return resp
}

// NewModuleResponse maps a module.
func NewModuleResponse(m *domain.CourseModule) ModuleResponse {
	return ModuleResponse{ID: m.ID, CourseID: m.CourseID, Title: m.Title, OrderIndex: m.OrderIndex, LessonCount: m.LessonCount}
}

// NewLessonResponse maps a lesson.
func NewLessonResponse(l *domain.Lesson) LessonResponse {
	return LessonResponse{
		ID:              l.ID,
		ModuleID:        l.ModuleID,
		CourseID:        l.CourseID,
		Title:           l.Title,
		Content:         l.Content,
		VideoURL:        l.VideoURL,
		DurationMinutes: l.DurationMinutes,
		OrderIndex:      l.OrderIndex,
		ModuleTitle:     l.ModuleTitle,
		ModuleOrder:     l.ModuleOrder,
	}
}
