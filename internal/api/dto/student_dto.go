package dto

import (
	"time"

	"github.com/spec-kit/edudigital/internal/domain"
)

// EnrollRequest payload for POST /student/enrollments.
type EnrollRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
}

// WishlistRequest payload for POST /student/wishlist.
type WishlistRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
}

// QuizAnswerRequest is one answered question.
type QuizAnswerRequest struct {
	QuestionID       string  `json:"questionId" validate:"required,uuid"`
	SelectedOptionID *string `json:"selectedOptionId" validate:"omitempty,uuid"`
}

// QuizSubmitRequest payload for POST /student/quiz/submit.
type QuizSubmitRequest struct {
	QuizID  string              `json:"quizId" validate:"required,uuid"`
	Answers []QuizAnswerRequest `json:"answers" validate:"dive"`
}

// QuizOptionRequest describes an option when authoring a quiz.
type QuizOptionRequest struct {
	Text      string `json:"text" validate:"notblank"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuizQuestionRequest describes a question when authoring a quiz.
type QuizQuestionRequest struct {
	Question   string              `json:"question" validate:"notblank"`
	Points     int                 `json:"points" validate:"gte=0"`
	OrderIndex int                 `json:"orderIndex" validate:"gte=0"`
	Options    []QuizOptionRequest `json:"options" validate:"min=2,dive"`
}

// QuizCreateRequest payload for POST /teacher/courses/:id/quizzes.
type QuizCreateRequest struct {
	Title        string                `json:"title" validate:"notblank,max=200"`
	PassingScore float64               `json:"passingScore" validate:"gte=0,lte=100"`
	Questions    []QuizQuestionRequest `json:"questions" validate:"min=1,dive"`
}

// DiscussionRequest payload for POST /discussions.
type DiscussionRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
	Title    string `json:"title" validate:"notblank,max=200"`
	Content  string `json:"content" validate:"notblank"`
}

// EnrollmentResponse describes an enrollment.
type EnrollmentResponse struct {
	ID           string    `json:"id"`
	CourseID     string    `json:"courseId"`
	Progress     int       `json:"progress"`
	Completed    bool      `json:"completed"`
	EnrolledAt   time.Time `json:"enrolledAt"`
	Title        string    `json:"title,omitempty"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	Price        float64   `json:"price,omitempty"`
	Rating       float64   `json:"rating,omitempty"`
	TotalLessons int64     `json:"totalLessons,omitempty"`
}

// WishlistResponse describes a bookmarked course.
type WishlistResponse struct {
	ID       string    `json:"id"`
	CourseID string    `json:"courseId"`
	Title    string    `json:"title,omitempty"`
	ImageURL *string   `json:"imageUrl,omitempty"`
	Price    float64   `json:"price,omitempty"`
	Level    string    `json:"level,omitempty"`
	AddedAt  time.Time `json:"addedAt"`
}

// QuizResponse is a quiz as shown to the caller.
type QuizResponse struct {
	ID           string                 `json:"id"`
	CourseID     string                 `json:"courseId"`
	Title        string                 `json:"title"`
	PassingScore float64                `json:"passingScore"`
	Questions    []QuizQuestionResponse `json:"questions"`
}

// QuizQuestionResponse is one question and its options.
type QuizQuestionResponse struct {
	ID         string               `json:"id"`
	Question   string               `json:"question"`
	Points     int                  `json:"points"`
	OrderIndex int                  `json:"orderIndex"`
	Options    []QuizOptionResponse `json:"options"`
}

// QuizOptionResponse omits correctness unless revealed.
type QuizOptionResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect *bool  `json:"isCorrect,omitempty"`
}

// QuizResultResponse is the graded submission.
type QuizResultResponse struct {
	SubmissionID string    `json:"submissionId"`
	Score        int       `json:"score"`
	TotalPoints  int       `json:"totalPoints"`
	Percentage   float64   `json:"percentage"`
	Passed       bool      `json:"passed"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// DiscussionResponse describes a forum thread.
type DiscussionResponse struct {
	ID              string    `json:"id"`
	CourseID        string    `json:"courseId"`
	AuthorID        string    `json:"authorId"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	IsPinned        bool      `json:"isPinned"`
	AuthorFirstName string    `json:"authorFirstName,omitempty"`
	AuthorLastName  string    `json:"authorLastName,omitempty"`
	AuthorAvatarURL *string   `json:"authorAvatarUrl,omitempty"`
	ReplyCount      int64     `json:"replyCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToAnswers converts the submitted answers.
func (r QuizSubmitRequest) ToAnswers() []domain.QuizAnswer {
	answers := make([]domain.QuizAnswer, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, domain.QuizAnswer{QuestionID: a.QuestionID, SelectedOptionID: a.SelectedOptionID})
	}
	return answers
}

// ToQuiz converts the authoring payload.
func (r QuizCreateRequest) ToQuiz() domain.Quiz {
	quiz := domain.Quiz{Title: r.Title, PassingScore: r.PassingScore}
	for _, q := range r.Questions {
		question := domain.QuizQuestion{Prompt: q.Question, Points: q.Points, OrderIndex: q.OrderIndex}
		for _, o := range q.Options {
			question.Options = append(question.Options, domain.QuizOption{Text: o.Text, IsCorrect: o.IsCorrect})
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz
}

// NewEnrollmentResponse maps a bare enrollment.
func NewEnrollmentResponse(e *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         e.ID,
		CourseID:   e.CourseID,
		Progress:   e.Progress,
		Completed:  e.Completed,
		EnrolledAt: e.EnrolledAt,
	}
}

// NewEnrollmentDetailResponse maps a dashboard enrollment.
func NewEnrollmentDetailResponse(d *domain.EnrollmentDetail) EnrollmentResponse {
	resp := NewEnrollmentResponse(&d.Enrollment)
	resp.Title = d.Title
	resp.ImageURL = d.ImageURL
	resp.Price = d.Price
	resp.Rating = d.Rating
	resp.TotalLessons = d.TotalLessons
	return resp
}

// NewWishlistResponse maps a wishlist item.
func NewWishlistResponse(w *domain.WishlistItem) WishlistResponse {
	return WishlistResponse{
		ID:       w.ID,
		CourseID: w.CourseID,
		Title:    w.Title,
		ImageURL: w.ImageURL,
		Price:    w.Price,
		Level:    string(w.Level),
		AddedAt:  w.AddedAt,
	}
}

// NewQuizResponse maps a quiz; revealAnswers controls isCorrect.
func NewQuizResponse(q *domain.Quiz, revealAnswers bool) QuizResponse {
	resp := QuizResponse{
		ID:           q.ID,
		CourseID:     q.CourseID,
		Title:        q.Title,
		PassingScore: q.PassingScore,
		Questions:    make([]QuizQuestionResponse, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		qr := QuizQuestionResponse{
			ID:         question.ID,
			Question:   question.Prompt,
			Points:     question.Points,
			OrderIndex: question.OrderIndex,
			Options:    make([]QuizOptionResponse, 0, len(question.Options)),
		}
		for _, option := range question.Options {
			opt := QuizOptionResponse{ID: option.ID, Text: option.Text}
			if revealAnswers {
				correct := option.IsCorrect
				opt.IsCorrect = &correct
			}
			qr.Options = append(qr.Options, opt)
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return resp
}

// NewQuizResultResponse maps a graded submission.
func NewQuizResultResponse(s domain.QuizSubmission, r domain.QuizResult) QuizResultResponse {
	return QuizResultResponse{
		SubmissionID: s.ID,
		Score:        r.Score,
		TotalPoints:  r.TotalPoints,
		Percentage:   r.Percentage,
		Passed:       r.Passed,
		SubmittedAt:  s.SubmittedAt,
	}
}

// NewDiscussionResponse maps a discussion.
func NewDiscussionResponse(d *domain.Discussion) DiscussionResponse {
	return DiscussionResponse{
		ID:              d.ID,
		CourseID:        d.CourseID,
		AuthorID:        d.AuthorID,
		Title:           d.Title,
		Content:         d.Content,
		IsPinned:        d.IsPinned,
		AuthorFirstName: d.AuthorFirstName,
		AuthorLastName:  d.AuthorLastName,
		AuthorAvatarURL: d.AuthorAvatarURL,
		ReplyCount:      d.ReplyCount,
		CreatedAt:       d.CreatedAt,
	}
}
