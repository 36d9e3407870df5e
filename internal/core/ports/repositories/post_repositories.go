package repositories

import (
	"context"

	"github.com/blogrest/blog_backend/internal/core/domain"
)

// PostReader defines read operations for post data
type PostReader interface {
	// FindPostByID retrieves a specific post by its ID.
	FindPostByID(ctx context.Context, postID string) (*domain.Post, error)

	// FindPosts retrieves a paginated list of posts, optionally filtered by
	// author. An empty authorID means no filter.
	FindPosts(ctx context.Context, authorID string, limit int, offset int) ([]domain.Post, error)
}

// PostWriter defines write operations for post data
type PostWriter interface {
	// SavePost persists a new post.
	SavePost(ctx context.Context, post domain.Post) error
}

// PostRepositoryFacade combines all post-related repository interfaces
type PostRepositoryFacade interface {
	PostReader
	PostWriter
}
