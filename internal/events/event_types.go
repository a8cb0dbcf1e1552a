package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/edudigital/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEnrollmentCreated      EventType = "enrollment_created"
	EventQuizSubmitted          EventType = "quiz_submitted"
	EventDiscussionCreated      EventType = "discussion_created"
	EventCourseCreated          EventType = "course_created"
	EventPasswordResetRequested EventType = "password_reset_requested"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New stamps an event with an id and the current time.
func New(eventType EventType, actor Actor, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// EnrollmentCreatedPayload payload.
type EnrollmentCreatedPayload struct {
	EnrollmentID string `json:"enrollment_id"`
	CourseID     string `json:"course_id"`
}

// QuizSubmittedPayload payload.
type QuizSubmittedPayload struct {
	QuizID       string  `json:"quiz_id"`
	SubmissionID string  `json:"submission_id"`
	Score        int     `json:"score"`
	TotalPoints  int     `json:"total_points"`
	Percentage   float64 `json:"percentage"`
	Passed       bool    `json:"passed"`
}

// DiscussionCreatedPayload payload.
type DiscussionCreatedPayload struct {
	DiscussionID string `json:"discussion_id"`
	CourseID     string `json:"course_id"`
	Title        string `json:"title"`
}

// CourseCreatedPayload payload.
type CourseCreatedPayload struct {
	CourseID  string `json:"course_id"`
	Title     string `json:"title"`
	Published bool   `json:"published"`
}

// PasswordResetRequestedPayload payload.
type PasswordResetRequestedPayload struct {
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
