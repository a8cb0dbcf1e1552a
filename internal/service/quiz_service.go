package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/edudigital/internal/auth"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/events"
	"github.com/spec-kit/edudigital/internal/repository"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

const defaultPassingScore = 70

// QuizService serves quizzes to students and grades submissions.
type QuizService struct {
	quizzes     repository.QuizRepository
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// QuizDependencies encapsulates collaborators for the quiz service.
type QuizDependencies struct {
	QuizRepo       repository.QuizRepository
	CourseRepo     repository.CourseRepository
	EnrollmentRepo repository.EnrollmentRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// QuizGrade is the persisted submission plus its grading.
type QuizGrade struct {
	Submission domain.QuizSubmission
	Result     domain.QuizResult
}

// NewQuizService builds the service.
func NewQuizService(deps QuizDependencies) *QuizService {
	return &QuizService{
		quizzes:     deps.QuizRepo,
		courses:     deps.CourseRepo,
		enrollments: deps.EnrollmentRepo,
		dispatcher:  deps.Dispatcher,
		logger:      nopIfNil(deps.Logger),
	}
}

// CreateQuiz attaches a quiz to a course owned by the teacher.
func (s *QuizService) CreateQuiz(ctx context.Context, teacher auth.Principal, courseID string, quiz domain.Quiz) (*domain.Quiz, error) {
	if _, err := s.courses.GetForTeacher(ctx, courseID, teacher.ID); err != nil {
		return nil, notFound(err, "course")
	}
	if len(quiz.Questions) == 0 {
		return nil, apperrors.NewValidationError("quiz needs at least one question", nil)
	}
	for i, question := range quiz.Questions {
		if !hasCorrectOption(question) {
			return nil, apperrors.NewValidationError("every question needs a correct option", map[string]any{"question": i})
		}
		if question.Points <= 0 {
			quiz.Questions[i].Points = 1
		}
		if question.OrderIndex == 0 {
			quiz.Questions[i].OrderIndex = i + 1
		}
	}
	quiz.CourseID = courseID
	quiz.Title = strings.TrimSpace(quiz.Title)
	if quiz.PassingScore <= 0 {
		quiz.PassingScore = defaultPassingScore
	}
	if err := s.quizzes.Create(ctx, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GetQuizForStudent returns the quiz with option correctness removed.
func (s *QuizService) GetQuizForStudent(ctx context.Context, student auth.Principal, quizID string) (*domain.Quiz, error) {
	quiz, err := s.loadForStudent(ctx, student, quizID)
	if err != nil {
		return nil, err
	}
	redacted := *quiz
	redacted.Questions = make([]domain.QuizQuestion, len(quiz.Questions))
	for i, question := range quiz.Questions {
		options := make([]domain.QuizOption, len(question.Options))
		for j, option := range question.Options {
			option.IsCorrect = false
			options[j] = option
		}
		question.Options = options
		redacted.Questions[i] = question
	}
	return &redacted, nil
}

// Submit grades the answers and records the attempt.
func (s *QuizService) Submit(ctx context.Context, student auth.Principal, quizID string, answers []domain.QuizAnswer) (*QuizGrade, error) {
	quiz, err := s.loadForStudent(ctx, student, quizID)
	if err != nil {
		return nil, err
	}

	result, err := quiz.Grade(answers)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownQuestion) {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
		return nil, err
	}

	submission := domain.QuizSubmission{
		StudentID: student.ID,
		QuizID:    quiz.ID,
		Score:     result.Score,
		Passed:    result.Passed,
	}
	if err := s.quizzes.CreateSubmission(ctx, &submission); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventQuizSubmitted, actorOf(student),
		events.QuizSubmittedPayload{
			QuizID:       quiz.ID,
			SubmissionID: submission.ID,
			Score:        result.Score,
			TotalPoints:  result.TotalPoints,
			Percentage:   result.Percentage,
			Passed:       result.Passed,
		}))
	return &QuizGrade{Submission: submission, Result: result}, nil
}

func (s *QuizService) loadForStudent(ctx context.Context, student auth.Principal, quizID string) (*domain.Quiz, error) {
	quiz, err := s.quizzes.GetWithQuestions(ctx, quizID)
	if err != nil {
		return nil, notFound(err, "quiz")
	}
	enrolled, err := s.enrollments.IsEnrolled(ctx, student.ID, quiz.CourseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.NewForbidden("not enrolled in this course")
	}
	return quiz, nil
}

func hasCorrectOption(question domain.QuizQuestion) bool {
	for _, option := range question.Options {
		if option.IsCorrect {
			return true
		}
	}
	return false
}
