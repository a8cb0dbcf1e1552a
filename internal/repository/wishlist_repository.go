package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/edudigital/internal/domain"
)

// WishlistRepository manages bookmarked courses.
type WishlistRepository interface {
	Add(ctx context.Context, item *domain.WishlistItem) error
	Remove(ctx context.Context, studentID, courseID string) error
	ListByStudent(ctx context.Context, studentID string) ([]domain.WishlistItem, error)
}

type wishlistRepository struct {
	pool *pgxpool.Pool
}

// NewWishlistRepository constructs repository.
func NewWishlistRepository(pool *pgxpool.Pool) WishlistRepository {
	return &wishlistRepository{pool: pool}
}

func (r *wishlistRepository) Add(ctx context.Context, item *domain.WishlistItem) error {
	const query = `
        INSERT INTO wishlist (student_id, course_id)
        VALUES ($1, $2)
        RETURNING id, added_at`
	return r.pool.QueryRow(ctx, query, item.StudentID, item.CourseID).Scan(&item.ID, &item.AddedAt)
}

func (r *wishlistRepository) Remove(ctx context.Context, studentID, courseID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM wishlist WHERE student_id=$1 AND course_id=$2`, studentID, courseID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *wishlistRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.WishlistItem, error) {
	const query = `
        SELECT w.id, w.student_id, w.course_id, w.added_at, c.title, c.image_url, c.price, c.level
        FROM wishlist w
        JOIN courses c ON w.course_id = c.id
        WHERE w.student_id = $1
        ORDER BY w.added_at DESC`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.WishlistItem{}
	for rows.Next() {
		var it domain.WishlistItem
		if err := rows.Scan(&it.ID, &it.StudentID, &it.CourseID, &it.AddedAt, &it.Title, &it.ImageURL, &it.Price, &it.Level); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
