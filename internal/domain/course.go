package domain

import "time"

// CourseLevel is the advertised difficulty of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Course is a unit of teaching owned by a teacher.
type Course struct {
	ID            string
	TeacherID     string
	Title         string
	Description   string
	Category      string
	Level         CourseLevel
	Price         float64
	DurationHours int
	ImageURL      *string
	Published     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CourseSummary decorates a course with catalog aggregates.
type CourseSummary struct {
	Course
	TeacherFirstName string
	TeacherLastName  string
	TeacherAvatarURL *string
	StudentCount     int64
	AverageRating    float64
}

// TeacherCourse decorates a course with the owner's dashboard counters.
type TeacherCourse struct {
	Course
	StudentCount   int64
	CompletedCount int64
}

// CourseModule groups lessons inside a course.
type CourseModule struct {
	ID          string
	CourseID    string
	Title       string
	OrderIndex  int
	LessonCount int64
	CreatedAt   time.Time
}

// Lesson is a single piece of content.
type Lesson struct {
	ID              string
	ModuleID        string
	CourseID        string
	Title           string
	Content         string
	VideoURL        *string
	DurationMinutes int
	OrderIndex      int
	ModuleTitle     string
	ModuleOrder     int
	CreatedAt       time.Time
}

// CourseFilter narrows catalog listings.
type CourseFilter struct {
	Category string
	Level    string
	Page     int
	Limit    int
}

// Offset converts page/limit into a row offset.
func (f CourseFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
