package services

import (
	"context"

	"github.com/blogrest/blog_backend/internal/core/domain"
	"github.com/blogrest/blog_backend/internal/dto"
)

// CommentSvcFacade defines the comment operations exposed to handlers.
type CommentSvcFacade interface {
	// CreateComment creates a comment on an existing post, authored by the
	// authenticated user's username. It fails with apperrors.ErrNotFound when
	// the post does not exist.
	CreateComment(ctx context.Context, author string, req dto.CreateCommentRequest) (*domain.Comment, error)

	// GetCommentByID retrieves a comment by ID.
	GetCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)

	// ListComments retrieves a paginated list of all comments.
	ListComments(ctx context.Context, limit, offset int) ([]domain.Comment, error)

	// ListCommentsByPost retrieves the comments of an existing post. It fails
	// with apperrors.ErrNotFound when the post does not exist.
	ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error)

	// UpdateComment replaces a comment's content.
	UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*domain.Comment, error)

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, commentID string) error
}
