package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogrest/blog_backend/internal/apperrors"
	"github.com/blogrest/blog_backend/internal/core/domain"
	portsrepo "github.com/blogrest/blog_backend/internal/core/ports/repositories"
	"github.com/blogrest/blog_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPostRepository struct {
	db *pgxpool.Pool
}

func newPgxPostRepository(db *pgxpool.Pool) portsrepo.PostRepositoryFacade {
	return &PgxPostRepository{db: db}
}

var _ portsrepo.PostRepositoryFacade = (*PgxPostRepository)(nil)

func toDomainPost(m models.Post) domain.Post {
	return domain.Post{
		PostID:    m.PostID,
		Title:     m.Title,
		Content:   m.Content,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *PgxPostRepository) SavePost(ctx context.Context, post domain.Post) error {
	query := `
        INSERT INTO posts (post_id, title, content, author_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		post.PostID,
		post.Title,
		post.Content,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *PgxPostRepository) FindPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	query := `
		SELECT post_id, title, content, author_id, created_at, updated_at
		FROM posts
		WHERE post_id = $1;
	`
	var modelPost models.Post
	err := r.db.QueryRow(ctx, query, postID).Scan(
		&modelPost.PostID,
		&modelPost.Title,
		&modelPost.Content,
		&modelPost.AuthorID,
		&modelPost.CreatedAt,
		&modelPost.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post by ID %s: %w", postID, err)
	}

	domainPost := toDomainPost(modelPost)
	return &domainPost, nil
}

func (r *PgxPostRepository) FindPosts(ctx context.Context, authorID string, limit int, offset int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	// An empty authorID matches all rows.
	query := `
        SELECT post_id, title, content, author_id, created_at, updated_at
        FROM posts
        WHERE ($1 = '' OR author_id = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var modelPost models.Post
		err := rows.Scan(
			&modelPost.PostID,
			&modelPost.Title,
			&modelPost.Content,
			&modelPost.AuthorID,
			&modelPost.CreatedAt,
			&modelPost.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, toDomainPost(modelPost))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", rows.Err())
	}

	return posts, nil
}
