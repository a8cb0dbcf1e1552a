package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/edudigital/internal/api/dto"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/service"
)

// TeacherHandler manages a teacher's own courses and their content.
type TeacherHandler struct {
	courses *service.CourseService
	quizzes *service.QuizService
}

// NewTeacherHandler constructs handler.
func NewTeacherHandler(courses *service.CourseService, quizzes *service.QuizService) *TeacherHandler {
	return &TeacherHandler{courses: courses, quizzes: quizzes}
}

// ListCourses GET /teacher/courses.
func (h *TeacherHandler) ListCourses(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	courses, err := h.courses.ListTeacherCourses(c.UserContext(), principal)
	if err != nil {
		return err
	}
	items := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		items = append(items, dto.NewTeacherCourseResponse(&courses[i]))
	}
	return data(c, http.StatusOK, items)
}

// CreateCourse POST /teacher/courses.
func (h *TeacherHandler) CreateCourse(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CourseRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	course, err := h.courses.CreateCourse(c.UserContext(), principal, courseInput(req))
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewCourseResponse(course))
}

// GetCourse GET /teacher/courses/:id.
func (h *TeacherHandler) GetCourse(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	course, err := h.courses.GetTeacherCourse(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewCourseResponse(course))
}

// UpdateCourse PUT /teacher/courses/:id.
func (h *TeacherHandler) UpdateCourse(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CourseRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	course, err := h.courses.UpdateCourse(c.UserContext(), principal, id, courseInput(req))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewCourseResponse(course))
}

// DeleteCourse DELETE /teacher/courses/:id.
func (h *TeacherHandler) DeleteCourse(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.courses.DeleteCourse(c.UserContext(), principal, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddModule POST /teacher/courses/:id/modules.
func (h *TeacherHandler) AddModule(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ModuleRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	module, err := h.courses.AddModule(c.UserContext(), principal, id, req.Title, req.OrderIndex)
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewModuleResponse(module))
}

// AddLesson POST /teacher/modules/:id/lessons.
func (h *TeacherHandler) AddLesson(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.LessonRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	lesson, err := h.courses.AddLesson(c.UserContext(), principal, id, service.LessonInput{
		Title:           req.Title,
		Content:         req.Content,
		VideoURL:        req.VideoURL,
		DurationMinutes: req.DurationMinutes,
		OrderIndex:      req.OrderIndex,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewLessonResponse(lesson))
}

// CreateQuiz POST /teacher/courses/:id/quizzes.
func (h *TeacherHandler) CreateQuiz(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.QuizCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	quiz, err := h.quizzes.CreateQuiz(c.UserContext(), principal, id, req.ToQuiz())
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewQuizResponse(quiz, true))
}

func courseInput(req dto.CourseRequest) service.CourseInput {
	return service.CourseInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Level:         domain.CourseLevel(req.Level),
		Price:         req.Price,
		DurationHours: req.DurationHours,
		ImageURL:      req.ImageURL,
		Published:     req.Published,
	}
}
