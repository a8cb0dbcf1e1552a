package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/edudigital/internal/domain"
)

const courseColumns = `c.id, c.teacher_id, c.title, c.description, c.category, c.level, c.price,
               c.duration_hours, c.image_url, c.published, c.created_at, c.updated_at`

// CourseRepository encapsulates course, module and lesson persistence.
type CourseRepository interface {
	ListPublished(ctx context.Context, filter domain.CourseFilter) ([]domain.CourseSummary, error)
	GetSummary(ctx context.Context, id string) (*domain.CourseSummary, error)
	ListModules(ctx context.Context, courseID string) ([]domain.CourseModule, error)
	ListLessons(ctx context.Context, courseID string) ([]domain.Lesson, error)

	ListByTeacher(ctx context.Context, teacherID string) ([]domain.TeacherCourse, error)
	GetForTeacher(ctx context.Context, id, teacherID string) (*domain.Course, error)
	Create(ctx context.Context, course *domain.Course) error
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id, teacherID string) error

	CreateModule(ctx context.Context, module *domain.CourseModule) error
	GetModuleForTeacher(ctx context.Context, moduleID, teacherID string) (*domain.CourseModule, error)
	CreateLesson(ctx context.Context, lesson *domain.Lesson) error
}

type courseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository instantiates repository.
func NewCourseRepository(pool *pgxpool.Pool) CourseRepository {
	return &courseRepository{pool: pool}
}

func (r *courseRepository) ListPublished(ctx context.Context, filter domain.CourseFilter) ([]domain.CourseSummary, error) {
	clauses := []string{"c.published = true"}
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("c.category=$%d", len(args)))
	}
	if filter.Level != "" {
		args = append(args, filter.Level)
		clauses = append(clauses, fmt.Sprintf("c.level=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	args = append(args, limit, filter.Offset())

	query := fmt.Sprintf(`
        SELECT %s, u.first_name, u.last_name, u.avatar_url,
               COUNT(DISTINCT e.id) AS student_count,
               COALESCE(AVG(rv.rating), 0) AS average_rating
        FROM courses c
        LEFT JOIN users u ON c.teacher_id = u.id
        LEFT JOIN enrollments e ON c.id = e.course_id
        LEFT JOIN reviews rv ON c.id = rv.course_id
        WHERE %s
        GROUP BY c.id, u.id
        ORDER BY c.created_at DESC
        LIMIT $%d OFFSET $%d`,
		courseColumns, strings.Join(clauses, " AND "), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.CourseSummary{}
	for rows.Next() {
		summary, err := scanCourseSummary(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *summary)
	}
	return result, rows.Err()
}

func (r *courseRepository) GetSummary(ctx context.Context, id string) (*domain.CourseSummary, error) {
	query := `
        SELECT ` + courseColumns + `, u.first_name, u.last_name, u.avatar_url,
               COUNT(DISTINCT e.id) AS student_count,
               COALESCE(AVG(rv.rating), 0) AS average_rating
        FROM courses c
        LEFT JOIN users u ON c.teacher_id = u.id
        LEFT JOIN enrollments e ON c.id = e.course_id
        LEFT JOIN reviews rv ON c.id = rv.course_id
        WHERE c.id = $1
        GROUP BY c.id, u.id`
	return scanCourseSummary(r.pool.QueryRow(ctx, query, id))
}

func (r *courseRepository) ListModules(ctx context.Context, courseID string) ([]domain.CourseModule, error) {
	const query = `
        SELECT cm.id, cm.course_id, cm.title, cm.order_index, cm.created_at, COUNT(DISTINCT l.id) AS lesson_count
        FROM course_modules cm
        LEFT JOIN lessons l ON cm.id = l.module_id
        WHERE cm.course_id = $1
        GROUP BY cm.id
        ORDER BY cm.order_index ASC`

	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modules := []domain.CourseModule{}
	for rows.Next() {
		var m domain.CourseModule
		if err := rows.Scan(&m.ID, &m.CourseID, &m.Title, &m.OrderIndex, &m.CreatedAt, &m.LessonCount); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (r *courseRepository) ListLessons(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	const query = `
        SELECT l.id, l.module_id, l.course_id, l.title, l.content, l.video_url, l.duration_minutes,
               l.order_index, l.created_at, cm.title AS module_title, cm.order_index AS module_order
        FROM lessons l
        JOIN course_modules cm ON l.module_id = cm.id
        WHERE cm.course_id = $1
        ORDER BY cm.order_index ASC, l.order_index ASC`

	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lessons := []domain.Lesson{}
	for rows.Next() {
		var l domain.Lesson
		if err := rows.Scan(
			&l.ID,
			&l.ModuleID,
			&l.CourseID,
			&l.Title,
			&l.Content,
			&l.VideoURL,
			&l.DurationMinutes,
			&l.OrderIndex,
			&l.CreatedAt,
			&l.ModuleTitle,
			&l.ModuleOrder,
		); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

func (r *courseRepository) ListByTeacher(ctx context.Context, teacherID string) ([]domain.TeacherCourse, error) {
	query := `
        SELECT ` + courseColumns + `,
               COUNT(DISTINCT e.id) AS student_count,
               COALESCE(SUM(CASE WHEN e.completed THEN 1 ELSE 0 END), 0) AS completed_count
        FROM courses c
        LEFT JOIN enrollments e ON c.id = e.course_id
        WHERE c.teacher_id = $1
        GROUP BY c.id
        ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.TeacherCourse{}
	for rows.Next() {
		var tc domain.TeacherCourse
		dest := append(courseDest(&tc.Course), &tc.StudentCount, &tc.CompletedCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		result = append(result, tc)
	}
	return result, rows.Err()
}

func (r *courseRepository) GetForTeacher(ctx context.Context, id, teacherID string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c WHERE c.id = $1 AND c.teacher_id = $2`
	var course domain.Course
	if err := r.pool.QueryRow(ctx, query, id, teacherID).Scan(courseDest(&course)...); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	const query = `
        INSERT INTO courses (teacher_id, title, description, category, level, price, duration_hours, image_url, published)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		course.TeacherID,
		course.Title,
		course.Description,
		course.Category,
		course.Level,
		course.Price,
		course.DurationHours,
		course.ImageURL,
		course.Published,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
}

// Update writes editable fields; only the owning teacher's row matches.
func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	const query = `
        UPDATE courses
        SET title=$1, description=$2, category=$3, level=$4, price=$5, duration_hours=$6,
            image_url=$7, published=$8, updated_at=NOW()
        WHERE id=$9 AND teacher_id=$10
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		course.Title,
		course.Description,
		course.Category,
		course.Level,
		course.Price,
		course.DurationHours,
		course.ImageURL,
		course.Published,
		course.ID,
		course.TeacherID,
	).Scan(&course.CreatedAt, &course.UpdatedAt)
}

func (r *courseRepository) Delete(ctx context.Context, id, teacherID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id=$1 AND teacher_id=$2`, id, teacherID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *courseRepository) CreateModule(ctx context.Context, module *domain.CourseModule) error {
	const query = `
        INSERT INTO course_modules (course_id, title, order_index)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, module.CourseID, module.Title, module.OrderIndex).
		Scan(&module.ID, &module.CreatedAt)
}

func (r *courseRepository) GetModuleForTeacher(ctx context.Context, moduleID, teacherID string) (*domain.CourseModule, error) {
	const query = `
        SELECT cm.id, cm.course_id, cm.title, cm.order_index, cm.created_at
        FROM course_modules cm
        JOIN courses c ON c.id = cm.course_id
        WHERE cm.id = $1 AND c.teacher_id = $2`
	var m domain.CourseModule
	if err := r.pool.QueryRow(ctx, query, moduleID, teacherID).
		Scan(&m.ID, &m.CourseID, &m.Title, &m.OrderIndex, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *courseRepository) CreateLesson(ctx context.Context, lesson *domain.Lesson) error {
	const query = `
        INSERT INTO lessons (module_id, course_id, title, content, video_url, duration_minutes, order_index)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		lesson.ModuleID,
		lesson.CourseID,
		lesson.Title,
		lesson.Content,
		lesson.VideoURL,
		lesson.DurationMinutes,
		lesson.OrderIndex,
	).Scan(&lesson.ID, &lesson.CreatedAt)
}

func courseDest(c *domain.Course) []any {
	return []any{
		&c.ID,
		&c.TeacherID,
		&c.Title,
		&c.Description,
		&c.Category,
		&c.Level,
		&c.Price,
		&c.DurationHours,
		&c.ImageURL,
		&c.Published,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

func scanCourseSummary(row pgx.Row) (*domain.CourseSummary, error) {
	var s domain.CourseSummary
	var first, last *string
	dest := append(courseDest(&s.Course), &first, &last, &s.TeacherAvatarURL, &s.StudentCount, &s.AverageRating)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if first != nil {
		s.TeacherFirstName = *first
	}
	if last != nil {
		s.TeacherLastName = *last
	}
	return &s, nil
}
