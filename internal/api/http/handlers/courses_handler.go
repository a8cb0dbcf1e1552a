package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/edudigital/internal/api/dto"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/service"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

// CoursesHandler serves the public catalog and course discussions.
type CoursesHandler struct {
	courses     *service.CourseService
	discussions *service.DiscussionService
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(courses *service.CourseService, discussions *service.DiscussionService) *CoursesHandler {
	return &CoursesHandler{courses: courses, discussions: discussions}
}

// ListCourses GET /courses.
func (h *CoursesHandler) ListCourses(c *fiber.Ctx) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	if limit < 0 || limit > 100 {
		return apperrors.NewValidationError("limit must be between 1 and 100", map[string]any{"limit": limit})
	}

	filter := service.NormalizeFilter(domain.CourseFilter{
		Category: c.Query("category"),
		Level:    c.Query("level"),
		Page:     page,
		Limit:    limit,
	})
	courses, err := h.courses.ListCatalog(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.CourseSummaryResponse, 0, len(courses))
	for i := range courses {
		items = append(items, dto.NewCourseSummaryResponse(&courses[i], nil))
	}
	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": fiber.Map{"page": filter.Page, "limit": filter.Limit},
	})
}

// GetCourse GET /courses/:id.
func (h *CoursesHandler) GetCourse(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.courses.GetCourse(c.UserContext(), id)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewCourseSummaryResponse(&detail.CourseSummary, detail.Modules))
}

// ListLessons GET /courses/:id/lessons.
func (h *CoursesHandler) ListLessons(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	lessons, err := h.courses.ListLessons(c.UserContext(), id)
	if err != nil {
		return err
	}
	items := make([]dto.LessonResponse, 0, len(lessons))
	for i := range lessons {
		items = append(items, dto.NewLessonResponse(&lessons[i]))
	}
	return data(c, http.StatusOK, items)
}

// ListDiscussions GET /discussions?courseId=.
func (h *CoursesHandler) ListDiscussions(c *fiber.Ctx) error {
	discussions, err := h.discussions.ListByCourse(c.UserContext(), c.Query("courseId"))
	if err != nil {
		return err
	}
	items := make([]dto.DiscussionResponse, 0, len(discussions))
	for i := range discussions {
		items = append(items, dto.NewDiscussionResponse(&discussions[i]))
	}
	return data(c, http.StatusOK, items)
}

// CreateDiscussion POST /discussions.
func (h *CoursesHandler) CreateDiscussion(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.DiscussionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	discussion, err := h.discussions.Create(c.UserContext(), principal, req.CourseID, req.Title, req.Content)
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewDiscussionResponse(discussion))
}
