package domain

import "time"

// Enrollment links a student to a course.
type Enrollment struct {
	ID         string
	StudentID  string
	CourseID   string
	Progress   int
	Completed  bool
	EnrolledAt time.Time
}

// EnrollmentDetail decorates an enrollment for the student dashboard.
type EnrollmentDetail struct {
	Enrollment
	Title        string
	ImageURL     *string
	Price        float64
	Rating       float64
	TotalLessons int64
}

// WishlistItem is a course a student bookmarked.
type WishlistItem struct {
	ID        string
	StudentID string
	CourseID  string
	Title     string
	ImageURL  *string
	Price     float64
	Level     CourseLevel
	AddedAt   time.Time
}
