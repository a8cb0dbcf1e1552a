package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/edudigital/internal/api/dto"
	"github.com/spec-kit/edudigital/internal/service"
)

// StudentHandler serves the student dashboard.
type StudentHandler struct {
	enrollments *service.EnrollmentService
	quizzes     *service.QuizService
}

// NewStudentHandler constructs handler.
func NewStudentHandler(enrollments *service.EnrollmentService, quizzes *service.QuizService) *StudentHandler {
	return &StudentHandler{enrollments: enrollments, quizzes: quizzes}
}

// ListEnrollments GET /student/enrollments.
func (h *StudentHandler) ListEnrollments(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	enrollments, err := h.enrollments.ListEnrollments(c.UserContext(), principal)
	if err != nil {
		return err
	}
	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		items = append(items, dto.NewEnrollmentDetailResponse(&enrollments[i]))
	}
	return data(c, http.StatusOK, items)
}

// Enroll POST /student/enrollments.
func (h *StudentHandler) Enroll(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.EnrollRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	enrollment, err := h.enrollments.Enroll(c.UserContext(), principal, req.CourseID)
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewEnrollmentResponse(enrollment))
}

// ListWishlist GET /student/wishlist.
func (h *StudentHandler) ListWishlist(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	items, err := h.enrollments.ListWishlist(c.UserContext(), principal)
	if err != nil {
		return err
	}
	out := make([]dto.WishlistResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewWishlistResponse(&items[i]))
	}
	return data(c, http.StatusOK, out)
}

// AddToWishlist POST /student/wishlist.
func (h *StudentHandler) AddToWishlist(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.WishlistRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item, err := h.enrollments.AddToWishlist(c.UserContext(), principal, req.CourseID)
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewWishlistResponse(item))
}

// RemoveFromWishlist DELETE /student/wishlist/:courseId.
func (h *StudentHandler) RemoveFromWishlist(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	courseID, err := pathID(c, "courseId")
	if err != nil {
		return err
	}
	if err := h.enrollments.RemoveFromWishlist(c.UserContext(), principal, courseID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetQuiz GET /student/quizzes/:id.
func (h *StudentHandler) GetQuiz(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	quiz, err := h.quizzes.GetQuizForStudent(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewQuizResponse(quiz, false))
}

// SubmitQuiz POST /student/quiz/submit.
func (h *StudentHandler) SubmitQuiz(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.QuizSubmitRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	grade, err := h.quizzes.Submit(c.UserContext(), principal, req.QuizID, req.ToAnswers())
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewQuizResultResponse(grade.Submission, grade.Result))
}
