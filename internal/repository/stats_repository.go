package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/edudigital/internal/domain"
)

// StatsRepository runs the admin aggregate queries. Each method is a single
// independent statement so callers may run them concurrently.
type StatsRepository interface {
	CountUsers(ctx context.Context, role *domain.Role) (int64, error)
	CountCourses(ctx context.Context, publishedOnly bool) (int64, error)
	CountEnrollments(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository constructs repository.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) CountUsers(ctx context.Context, role *domain.Role) (int64, error) {
	var count int64
	if role == nil {
		err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
		return count, err
	}
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE user_type=$1`, *role).Scan(&count)
	return count, err
}

func (r *statsRepository) CountCourses(ctx context.Context, publishedOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM courses`
	if publishedOnly {
		query += ` WHERE published = true`
	}
	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	return count, err
}

func (r *statsRepository) CountEnrollments(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments`).Scan(&count)
	return count, err
}

func (r *statsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	const query = `SELECT COALESCE(SUM(c.price), 0) FROM enrollments e JOIN courses c ON e.course_id = c.id`
	var total float64
	err := r.pool.QueryRow(ctx, query).Scan(&total)
	return total, err
}
