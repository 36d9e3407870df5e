package services

import (
	portsrepo "github.com/blogrest/blog_backend/internal/core/ports/repositories"
	portssvc "github.com/blogrest/blog_backend/internal/core/ports/services"
	"github.com/blogrest/blog_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Post = NewPostService(repos.PostRepo)
	container.Comment = NewCommentService(repos.CommentRepo, repos.PostRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.AuthSvcFacade    = (*authService)(nil)
	_ portssvc.UserSvcFacade    = (*userService)(nil)
	_ portssvc.PostSvcFacade    = (*postService)(nil)
	_ portssvc.CommentSvcFacade = (*commentService)(nil)
)
