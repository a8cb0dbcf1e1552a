package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownQuestion is returned when an answer references a question outside the quiz.
var ErrUnknownQuestion = errors.New("answer references a question outside the quiz")

// Quiz is an evaluation attached to a course.
type Quiz struct {
	ID           string
	CourseID     string
	Title        string
	PassingScore float64
	Questions    []QuizQuestion
	CreatedAt    time.Time
}

// QuizQuestion is one question and its options.
type QuizQuestion struct {
	ID         string
	QuizID     string
	Prompt     string
	Points     int
	OrderIndex int
	Options    []QuizOption
}

// QuizOption is a selectable answer.
type QuizOption struct {
	ID         string
	QuestionID string
	Text       string
	IsCorrect  bool
}

// QuizAnswer is a student's choice for one question. A nil option means unanswered.
type QuizAnswer struct {
	QuestionID       string
	SelectedOptionID *string
}

// QuizResult is the outcome of grading one submission.
type QuizResult struct {
	Score       int
	TotalPoints int
	Percentage  float64
	Passed      bool
}

// QuizSubmission is a persisted attempt.
type QuizSubmission struct {
	ID          string
	StudentID   string
	QuizID      string
	Score       int
	Passed      bool
	SubmittedAt time.Time
}

// Grade scores answers against the quiz. Every question of the quiz counts
// toward the total; unanswered questions score zero.
func (q Quiz) Grade(answers []QuizAnswer) (QuizResult, error) {
	byID := make(map[string]QuizQuestion, len(q.Questions))
	total := 0
	for _, question := range q.Questions {
		byID[question.ID] = question
		total += question.Points
	}

	score := 0
	seen := make(map[string]struct{}, len(answers))
	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			return QuizResult{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, answer.QuestionID)
		}
		if _, dup := seen[answer.QuestionID]; dup {
			continue
		}
		seen[answer.QuestionID] = struct{}{}
		if answer.SelectedOptionID == nil {
			continue
		}
		for _, option := range question.Options {
			if option.ID == *answer.SelectedOptionID && option.IsCorrect {
				score += question.Points
				break
			}
		}
	}

	result := QuizResult{Score: score, TotalPoints: total}
	if total > 0 {
		result.Percentage = float64(score) / float64(total) * 100
		result.Passed = result.Percentage >= q.PassingScore
	}
	return result, nil
}
