package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/events"
)

func sampleQuiz() *domain.Quiz {
	return &domain.Quiz{
		ID:           "q-1",
		CourseID:     "c-1",
		Title:        "Basics",
		PassingScore: 50,
		Questions: []domain.QuizQuestion{
			{ID: "qq-1", Points: 2, Options: []domain.QuizOption{{ID: "o-1", IsCorrect: true}, {ID: "o-2"}}},
			{ID: "qq-2", Points: 2, Options: []domain.QuizOption{{ID: "o-3"}, {ID: "o-4", IsCorrect: true}}},
		},
	}
}

func newTestQuizService() (*QuizService, *MockQuizRepository, *MockCourseRepository, *MockEnrollmentRepository, *recordingDispatcher) {
	quizzes := new(MockQuizRepository)
	courses := new(MockCourseRepository)
	enrollments := new(MockEnrollmentRepository)
	dispatcher := &recordingDispatcher{}
	svc := NewQuizService(QuizDependencies{
		QuizRepo:       quizzes,
		CourseRepo:     courses,
		EnrollmentRepo: enrollments,
		Dispatcher:     dispatcher,
	})
	return svc, quizzes, courses, enrollments, dispatcher
}

func TestQuizService_GetQuizHidesCorrectness(t *testing.T) {
	ctx := context.Background()
	svc, quizzes, _, enrollments, _ := newTestQuizService()
	stored := sampleQuiz()

	quizzes.On("GetWithQuestions", ctx, "q-1").Return(stored, nil)
	enrollments.On("IsEnrolled", ctx, sam.ID, "c-1").Return(true, nil)

	quiz, err := svc.GetQuizForStudent(ctx, sam, "q-1")
	require.NoError(t, err)
	for _, question := range quiz.Questions {
		for _, option := range question.Options {
			assert.False(t, option.IsCorrect)
		}
	}
	assert.True(t, stored.Questions[0].Options[0].IsCorrect, "stored quiz must stay intact")
}

func TestQuizService_NotEnrolledIsForbidden(t *testing.T) {
	ctx := context.Background()
	svc, quizzes, _, enrollments, _ := newTestQuizService()

	quizzes.On("GetWithQuestions", ctx, "q-1").Return(sampleQuiz(), nil)
	enrollments.On("IsEnrolled", ctx, sam.ID, "c-1").Return(false, nil)

	_, err := svc.Submit(ctx, sam, "q-1", nil)
	requireStatus(t, err, http.StatusForbidden)
	quizzes.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
}

func TestQuizService_SubmitGradesAndRecords(t *testing.T) {
	ctx := context.Background()
	svc, quizzes, _, enrollments, dispatcher := newTestQuizService()

	quizzes.On("GetWithQuestions", ctx, "q-1").Return(sampleQuiz(), nil)
	enrollments.On("IsEnrolled", ctx, sam.ID, "c-1").Return(true, nil)
	quizzes.On("CreateSubmission", ctx, mock.MatchedBy(func(s *domain.QuizSubmission) bool {
		return s.StudentID == sam.ID && s.Score == 2 && s.Passed
	})).Return(nil)

	correct := "o-1"
	grade, err := svc.Submit(ctx, sam, "q-1", []domain.QuizAnswer{{QuestionID: "qq-1", SelectedOptionID: &correct}})
	require.NoError(t, err)
	assert.Equal(t, 4, grade.Result.TotalPoints)
	assert.InDelta(t, 50.0, grade.Result.Percentage, 0.001)
	assert.True(t, grade.Result.Passed)
	assert.Equal(t, []events.EventType{events.EventQuizSubmitted}, dispatcher.types())
}

func TestQuizService_SubmitUnknownQuestion(t *testing.T) {
	ctx := context.Background()
	svc, quizzes, _, enrollments, _ := newTestQuizService()

	quizzes.On("GetWithQuestions", ctx, "q-1").Return(sampleQuiz(), nil)
	enrollments.On("IsEnrolled", ctx, sam.ID, "c-1").Return(true, nil)

	_, err := svc.Submit(ctx, sam, "q-1", []domain.QuizAnswer{{QuestionID: "elsewhere"}})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestQuizService_CreateQuizValidates(t *testing.T) {
	ctx := context.Background()
	svc, quizzes, courses, _, _ := newTestQuizService()

	courses.On("GetForTeacher", ctx, "c-1", alice.ID).Return(&domain.Course{ID: "c-1", TeacherID: alice.ID}, nil)
	quizzes.On("Create", ctx, mock.MatchedBy(func(q *domain.Quiz) bool {
		return q.CourseID == "c-1" && q.PassingScore == 70 && q.Questions[0].Points == 1
	})).Return(nil)

	_, err := svc.CreateQuiz(ctx, alice, "c-1", domain.Quiz{Title: "Empty"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.CreateQuiz(ctx, alice, "c-1", domain.Quiz{
		Title:     "No answer",
		Questions: []domain.QuizQuestion{{Prompt: "?", Options: []domain.QuizOption{{Text: "a"}}}},
	})
	requireStatus(t, err, http.StatusBadRequest)

	quiz, err := svc.CreateQuiz(ctx, alice, "c-1", domain.Quiz{
		Title:     "Good",
		Questions: []domain.QuizQuestion{{Prompt: "2+2?", Options: []domain.QuizOption{{Text: "4", IsCorrect: true}}}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, quiz.Questions[0].OrderIndex)
	quizzes.AssertExpectations(t)
}
