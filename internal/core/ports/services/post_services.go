package services

import (
	"context"

	"github.com/blogrest/blog_backend/internal/core/domain"
	"github.com/blogrest/blog_backend/internal/dto"
)

// PostSvcFacade defines the post operations exposed to handlers.
type PostSvcFacade interface {
	// CreatePost creates a post authored by the authenticated user.
	CreatePost(ctx context.Context, authorID string, req dto.CreatePostRequest) (*domain.Post, error)

	// GetPostByID retrieves a post by ID.
	GetPostByID(ctx context.Context, postID string) (*domain.Post, error)

	// ListPosts retrieves posts, optionally filtered by author ID.
	ListPosts(ctx context.Context, authorID string, limit, offset int) ([]domain.Post, error)
}
