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

type commentService struct {
	commentRepo portsrepo.CommentRepositoryFacade
	postRepo    portsrepo.PostReader
}

// NewCommentService creates a new instance of commentService. The post reader
// is used to verify that a comment's target post exists.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, postRepo portsrepo.PostReader) portssvc.CommentSvcFacade {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) CreateComment(ctx context.Context, author string, req dto.CreateCommentRequest) (*domain.Comment, error) {
	// Comments can only attach to existing posts. ErrNotFound propagates as-is.
	if _, err := s.postRepo.FindPostByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := domain.Comment{
		CommentID: uuid.NewString(),
		PostID:    req.PostID,
		Content:   req.Content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	return &comment, nil
}

func (s *commentService) GetCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment by ID: %w", err)
	}
	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, limit, offset int) ([]domain.Comment, error) {
	comments, err := s.commentRepo.FindComments(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	if _, err := s.postRepo.FindPostByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post: %w", err)
	}
	return comments, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = req.Content
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.UpdateComment(ctx, *comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID string) error {
	return s.commentRepo.DeleteComment(ctx, commentID)
}
