package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/edudigital/internal/domain"
)

// QuizRepository manages quizzes and submissions.
type QuizRepository interface {
	Create(ctx context.Context, quiz *domain.Quiz) error
	GetWithQuestions(ctx context.Context, id string) (*domain.Quiz, error)
	CreateSubmission(ctx context.Context, submission *domain.QuizSubmission) error
}

type quizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository constructs repository.
func NewQuizRepository(pool *pgxpool.Pool) QuizRepository {
	return &quizRepository{pool: pool}
}

// Create stores the quiz, its questions and options in one transaction and
// fills in the generated ids.
func (r *quizRepository) Create(ctx context.Context, quiz *domain.Quiz) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const quizQuery = `
            INSERT INTO quizzes (course_id, title, passing_score)
            VALUES ($1, $2, $3)
            RETURNING id, created_at`
		if err := tx.QueryRow(ctx, quizQuery, quiz.CourseID, quiz.Title, quiz.PassingScore).
			Scan(&quiz.ID, &quiz.CreatedAt); err != nil {
			return fmt.Errorf("insert quiz: %w", err)
		}

		for qi := range quiz.Questions {
			question := &quiz.Questions[qi]
			question.QuizID = quiz.ID
			const questionQuery = `
                INSERT INTO quiz_questions (quiz_id, question, points, order_index)
                VALUES ($1, $2, $3, $4)
                RETURNING id`
			if err := tx.QueryRow(ctx, questionQuery, quiz.ID, question.Prompt, question.Points, question.OrderIndex).
				Scan(&question.ID); err != nil {
				return fmt.Errorf("insert question %d: %w", qi, err)
			}

			for oi := range question.Options {
				option := &question.Options[oi]
				option.QuestionID = question.ID
				const optionQuery = `
                    INSERT INTO quiz_options (question_id, option_text, is_correct)
                    VALUES ($1, $2, $3)
                    RETURNING id`
				if err := tx.QueryRow(ctx, optionQuery, question.ID, option.Text, option.IsCorrect).
					Scan(&option.ID); err != nil {
					return fmt.Errorf("insert option %d of question %d: %w", oi, qi, err)
				}
			}
		}
		return nil
	})
}

func (r *quizRepository) GetWithQuestions(ctx context.Context, id string) (*domain.Quiz, error) {
	const quizQuery = `SELECT id, course_id, title, passing_score, created_at FROM quizzes WHERE id=$1`
	var quiz domain.Quiz
	if err := r.pool.QueryRow(ctx, quizQuery, id).
		Scan(&quiz.ID, &quiz.CourseID, &quiz.Title, &quiz.PassingScore, &quiz.CreatedAt); err != nil {
		return nil, err
	}

	const questionsQuery = `
        SELECT q.id, q.question, q.points, q.order_index, o.id, o.option_text, o.is_correct
        FROM quiz_questions q
        LEFT JOIN quiz_options o ON o.question_id = q.id
        WHERE q.quiz_id = $1
        ORDER BY q.order_index ASC, q.id, o.id`
	rows, err := r.pool.Query(ctx, questionsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := map[string]int{}
	for rows.Next() {
		var (
			question  domain.QuizQuestion
			optionID  *string
			text      *string
			isCorrect *bool
		)
		if err := rows.Scan(&question.ID, &question.Prompt, &question.Points, &question.OrderIndex, &optionID, &text, &isCorrect); err != nil {
			return nil, err
		}
		pos, ok := index[question.ID]
		if !ok {
			question.QuizID = quiz.ID
			quiz.Questions = append(quiz.Questions, question)
			pos = len(quiz.Questions) - 1
			index[question.ID] = pos
		}
		if optionID != nil {
			option := domain.QuizOption{ID: *optionID, QuestionID: question.ID}
			if text != nil {
				option.Text = *text
			}
			if isCorrect != nil {
				option.IsCorrect = *isCorrect
			}
			quiz.Questions[pos].Options = append(quiz.Questions[pos].Options, option)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) CreateSubmission(ctx context.Context, s *domain.QuizSubmission) error {
	const query = `
        INSERT INTO quiz_submissions (student_id, quiz_id, score, passed)
        VALUES ($1, $2, $3, $4)
        RETURNING id, submitted_at`
	return r.pool.QueryRow(ctx, query, s.StudentID, s.QuizID, s.Score, s.Passed).Scan(&s.ID, &s.SubmittedAt)
}
