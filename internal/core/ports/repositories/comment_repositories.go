package repositories

import (
	"context"

	"github.com/blogrest/blog_backend/internal/core/domain"
)

// CommentReader defines read operations for comment data
type CommentReader interface {
	// FindCommentByID retrieves a specific comment by its ID.
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)

	// FindComments retrieves a paginated list of all comments.
	FindComments(ctx context.Context, limit int, offset int) ([]domain.Comment, error)

	// FindCommentsByPostID retrieves all comments attached to a post.
	FindCommentsByPostID(ctx context.Context, postID string) ([]domain.Comment, error)
}

// CommentWriter defines write operations for comment data
type CommentWriter interface {
	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// UpdateComment updates an existing comment's content.
	UpdateComment(ctx context.Context, comment domain.Comment) error

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, commentID string) error
}

// CommentRepositoryFacade combines all comment-related repository interfaces
type CommentRepositoryFacade interface {
	CommentReader
	CommentWriter
}
