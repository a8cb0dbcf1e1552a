package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleQuiz() Quiz {
	return Quiz{
		ID:           "quiz-1",
		PassingScore: 60,
		Questions: []QuizQuestion{
			{ID: "q1", Points: 2, Options: []QuizOption{{ID: "q1a", IsCorrect: true}, {ID: "q1b"}}},
			{ID: "q2", Points: 3, Options: []QuizOption{{ID: "q2a"}, {ID: "q2b", IsCorrect: true}}},
			{ID: "q3", Points: 5, Options: []QuizOption{{ID: "q3a", IsCorrect: true}}},
		},
	}
}

func TestQuizGrade(t *testing.T) {
	tests := []struct {
		name    string
		answers []QuizAnswer
		score   int
		passed  bool
	}{
		{
			name: "all correct",
			answers: []QuizAnswer{
				{QuestionID: "q1", SelectedOptionID: strPtr("q1a")},
				{QuestionID: "q2", SelectedOptionID: strPtr("q2b")},
				{QuestionID: "q3", SelectedOptionID: strPtr("q3a")},
			},
			score:  10,
			passed: true,
		},
		{
			name: "unanswered questions still count toward total",
			answers: []QuizAnswer{
				{QuestionID: "q1", SelectedOptionID: strPtr("q1a")},
				{QuestionID: "q2", SelectedOptionID: strPtr("q2b")},
			},
			score:  5,
			passed: false,
		},
		{
			name: "wrong option scores zero",
			answers: []QuizAnswer{
				{QuestionID: "q1", SelectedOptionID: strPtr("q1b")},
				{QuestionID: "q3", SelectedOptionID: strPtr("q3a")},
				{QuestionID: "q2"},
			},
			score:  5,
			passed: false,
		},
		{
			name: "duplicate answers are scored once",
			answers: []QuizAnswer{
				{QuestionID: "q3", SelectedOptionID: strPtr("q3a")},
				{QuestionID: "q3", SelectedOptionID: strPtr("q3a")},
				{QuestionID: "q2", SelectedOptionID: strPtr("q2b")},
			},
			score:  8,
			passed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sampleQuiz().Grade(tt.answers)
			require.NoError(t, err)
			assert.Equal(t, 10, result.TotalPoints)
			assert.Equal(t, tt.score, result.Score)
			assert.InDelta(t, float64(tt.score)*10, result.Percentage, 0.0001)
			assert.Equal(t, tt.passed, result.Passed)
		})
	}
}

func TestQuizGradeUnknownQuestion(t *testing.T) {
	_, err := sampleQuiz().Grade([]QuizAnswer{{QuestionID: "nope", SelectedOptionID: strPtr("x")}})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestQuizGradeEmptyQuiz(t *testing.T) {
	result, err := Quiz{PassingScore: 0}.Grade(nil)
	require.NoError(t, err)
	assert.Zero(t, result.Percentage)
	assert.False(t, result.Passed)
}

func TestQuizGradePassingScoreIsInclusive(t *testing.T) {
	quiz := sampleQuiz()
	quiz.PassingScore = 50
	result, err := quiz.Grade([]QuizAnswer{{QuestionID: "q3", SelectedOptionID: strPtr("q3a")}})
	require.NoError(t, err)
	assert.True(t, result.Passed)
}
