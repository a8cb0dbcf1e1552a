package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	err := Validate(&RegisterRequest{Email: "nope", Password: "short", FirstName: " ", LastName: "Doe", UserType: "wizard"})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Contains(t, domainErr.Details, "email")
	assert.Contains(t, domainErr.Details, "password")
	assert.Equal(t, "firstName cannot be blank", domainErr.Details["firstName"])
	assert.Equal(t, "userType must be one of student, teacher, admin", domainErr.Details["userType"])
	assert.NotContains(t, domainErr.Details, "lastName")
}

func TestValidate_Passes(t *testing.T) {
	require.NoError(t, Validate(&RegisterRequest{
		Email:     "alice@example.com",
		Password:  "long-enough",
		FirstName: "Alice",
		LastName:  "Doe",
		UserType:  "teacher",
	}))
	require.NoError(t, Validate(&LoginRequest{Email: "alice@example.com", Password: "x"}))
}

func TestValidate_NestedQuiz(t *testing.T) {
	err := Validate(&QuizCreateRequest{
		Title: "Quiz",
		Questions: []QuizQuestionRequest{
			{Question: "2+2?", Options: []QuizOptionRequest{{Text: "4", IsCorrect: true}}},
		},
	})
	require.Error(t, err)
	assert.Contains(t, apperrors.ToDomainError(err).Details, "options")
}

func TestQuizResponseHidesAnswers(t *testing.T) {
	quiz := QuizCreateRequest{
		Title: "Quiz",
		Questions: []QuizQuestionRequest{{
			Question: "2+2?",
			Options:  []QuizOptionRequest{{Text: "4", IsCorrect: true}, {Text: "5"}},
		}},
	}.ToQuiz()
	hidden := NewQuizResponse(&quiz, false)
	for _, q := range hidden.Questions {
		for _, o := range q.Options {
			assert.Nil(t, o.IsCorrect)
		}
	}
	shown := NewQuizResponse(&quiz, true)
	require.NotNil(t, shown.Questions[0].Options[0].IsCorrect)
	assert.True(t, *shown.Questions[0].Options[0].IsCorrect)
}
