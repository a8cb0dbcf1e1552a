package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/edudigital/internal/domain"
)

// EnrollmentRepository manages student enrollments.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) error
	ListByStudent(ctx context.Context, studentID string) ([]domain.EnrollmentDetail, error)
	IsEnrolled(ctx context.Context, studentID, courseID string) (bool, error)
}

type enrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository constructs repository.
func NewEnrollmentRepository(pool *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{pool: pool}
}

// Create fails with a unique violation when the student is already enrolled.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	const query = `
        INSERT INTO enrollments (student_id, course_id)
        VALUES ($1, $2)
        RETURNING id, progress, completed, enrolled_at`
	return r.pool.QueryRow(ctx, query, enrollment.StudentID, enrollment.CourseID).
		Scan(&enrollment.ID, &enrollment.Progress, &enrollment.Completed, &enrollment.EnrolledAt)
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.EnrollmentDetail, error) {
	const query = `
        SELECT e.id, e.student_id, e.course_id, e.progress, e.completed, e.enrolled_at,
               c.title, c.image_url, c.price,
               COALESCE((SELECT AVG(rating) FROM reviews rv WHERE rv.course_id = c.id), 0) AS rating,
               (SELECT COUNT(*) FROM lessons l WHERE l.course_id = c.id) AS total_lessons
        FROM enrollments e
        JOIN courses c ON e.course_id = c.id
        WHERE e.student_id = $1
        ORDER BY e.enrolled_at DESC`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.EnrollmentDetail{}
	for rows.Next() {
		var d domain.EnrollmentDetail
		if err := rows.Scan(
			&d.ID,
			&d.StudentID,
			&d.CourseID,
			&d.Progress,
			&d.Completed,
			&d.EnrolledAt,
			&d.Title,
			&d.ImageURL,
			&d.Price,
			&d.Rating,
			&d.TotalLessons,
		); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (r *enrollmentRepository) IsEnrolled(ctx context.Context, studentID, courseID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM enrollments WHERE student_id=$1 AND course_id=$2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, studentID, courseID).Scan(&exists)
	return exists, err
}
