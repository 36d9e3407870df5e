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

type PgxCommentRepository struct {
	db *pgxpool.Pool
}

func newPgxCommentRepository(db *pgxpool.Pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{db: db}
}

var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func toDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID: m.CommentID,
		PostID:    m.PostID,
		Content:   m.Content,
		Author:    m.Author,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var m models.Comment
	err := row.Scan(
		&m.CommentID,
		&m.PostID,
		&m.Content,
		&m.Author,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	query := `
        INSERT INTO comments (comment_id, post_id, content, author, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		comment.CommentID,
		comment.PostID,
		comment.Content,
		comment.Author,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := `
		SELECT comment_id, post_id, content, author, created_at, updated_at
		FROM comments
		WHERE comment_id = $1;
	`
	modelComment, err := scanComment(r.db.QueryRow(ctx, query, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment by ID %s: %w", commentID, err)
	}

	domainComment := toDomainComment(*modelComment)
	return &domainComment, nil
}

func (r *PgxCommentRepository) FindComments(ctx context.Context, limit int, offset int) ([]domain.Comment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT comment_id, post_id, content, author, created_at, updated_at
        FROM comments
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *PgxCommentRepository) FindCommentsByPostID(ctx context.Context, postID string) ([]domain.Comment, error) {
	query := `
        SELECT comment_id, post_id, content, author, created_at, updated_at
        FROM comments
        WHERE post_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for post: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

func collectComments(rows pgx.Rows) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	for rows.Next() {
		modelComment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, toDomainComment(*modelComment))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}

	return comments, nil
}

func (r *PgxCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	query := `
        UPDATE comments
        SET content = $1, updated_at = $2
        WHERE comment_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		comment.Content,
		comment.UpdatedAt,
		comment.CommentID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update comment query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
