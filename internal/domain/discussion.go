package domain

import "time"

// Discussion is a forum thread attached to a course.
type Discussion struct {
	ID              string
	CourseID        string
	AuthorID        string
	Title           string
	Content         string
	IsPinned        bool
	AuthorFirstName string
	AuthorLastName  string
	AuthorAvatarURL *string
	ReplyCount      int64
	CreatedAt       time.Time
}
