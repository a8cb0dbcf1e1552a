package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/edudigital/internal/domain"
)

// DiscussionRepository manages course forum threads.
type DiscussionRepository interface {
	Create(ctx context.Context, discussion *domain.Discussion) error
	ListByCourse(ctx context.Context, courseID string) ([]domain.Discussion, error)
}

type discussionRepository struct {
	pool *pgxpool.Pool
}

// NewDiscussionRepository constructs repository.
func NewDiscussionRepository(pool *pgxpool.Pool) DiscussionRepository {
	return &discussionRepository{pool: pool}
}

func (r *discussionRepository) Create(ctx context.Context, d *domain.Discussion) error {
	const query = `
        INSERT INTO discussions (course_id, author_id, title, content)
        VALUES ($1, $2, $3, $4)
        RETURNING id, is_pinned, created_at`
	return r.pool.QueryRow(ctx, query, d.CourseID, d.AuthorID, d.Title, d.Content).
		Scan(&d.ID, &d.IsPinned, &d.CreatedAt)
}

func (r *discussionRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.Discussion, error) {
	const query = `
        SELECT d.id, d.course_id, d.author_id, d.title, d.content, d.is_pinned, d.created_at,
               u.first_name, u.last_name, u.avatar_url,
               COUNT(DISTINCT dr.id) AS reply_count
        FROM discussions d
        JOIN users u ON d.author_id = u.id
        LEFT JOIN discussion_replies dr ON d.id = dr.discussion_id
        WHERE d.course_id = $1
        GROUP BY d.id, u.id
        ORDER BY d.is_pinned DESC, d.created_at DESC`

	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Discussion{}
	for rows.Next() {
		var d domain.Discussion
		if err := rows.Scan(
			&d.ID,
			&d.CourseID,
			&d.AuthorID,
			&d.Title,
			&d.Content,
			&d.IsPinned,
			&d.CreatedAt,
			&d.AuthorFirstName,
			&d.AuthorLastName,
			&d.AuthorAvatarURL,
			&d.ReplyCount,
		); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}
