package services

import (
	"context"
	"fmt"
	"time"

	"github.com/blogrest/blog_backend/internal/core/domain"
	portsrepo "github.com/blogrest/blog_backend/internal/core/ports/repositories"
	portssvc "github.com/blogrest/blog_backend/internal/core/ports/services"
	"github.com/blogrest/blog_backend/internal/dto"
	"github.com/google/uuid"
)

type postService struct {
	postRepo portsrepo.PostRepositoryFacade
}

// NewPostService creates a new instance of postService.
func NewPostService(postRepo portsrepo.PostRepositoryFacade) portssvc.PostSvcFacade {
	return &postService{postRepo: postRepo}
}

func (s *postService) CreatePost(ctx context.Context, authorID string, req dto.CreatePostRequest) (*domain.Post, error) {
	now := time.Now()
	post := domain.Post{
		PostID:    uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.postRepo.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to save post: %w", err)
	}

	return &post, nil
}

func (s *postService) GetPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, authorID string, limit, offset int) ([]domain.Post, error) {
	posts, err := s.postRepo.FindPosts(ctx, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
