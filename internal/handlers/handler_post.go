package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogrest/blog_backend/internal/apperrors"
	portssvc "github.com/blogrest/blog_backend/internal/core/ports/services"
	"github.com/blogrest/blog_backend/internal/dto"
	"github.com/blogrest/blog_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// postHandler handles HTTP requests related to posts.
type postHandler struct {
	postService portssvc.PostSvcFacade
}

func newPostHandler(ps portssvc.PostSvcFacade) *postHandler {
	return &postHandler{
		postService: ps,
	}
}

// registerPostRoutes registers all post-related routes.
func registerPostRoutes(rg *gin.RouterGroup, postService portssvc.PostSvcFacade) {
	h := newPostHandler(postService)

	posts := rg.Group("/post")
	{
		posts.POST("", h.createPost)
		posts.GET("", h.listPosts)
		posts.GET("/:id", h.getPost)
	}
}

// createPost godoc
// @Summary Create a post
// @Description Creates a post authored by the authenticated user.
// @Tags posts
// @Accept json
// @Produce json
// @Param post body dto.CreatePostRequest true "Post content"
// @Success 201 {object} domain.Post
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /post [post]
func (h *postHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user := middleware.GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not authorized"})
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), user.UserID, req)
	if err != nil {
		logger.Error("Failed to create post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// listPosts godoc
// @Summary List posts
// @Description Retrieves posts, optionally filtered by sender (author UserID).
// @Tags posts
// @Produce json
// @Param sender query string false "Author UserID filter"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.Post
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /post [get]
func (h *postHandler) listPosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPostsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	posts, err := h.postService.ListPosts(c.Request.Context(), params.Sender, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list posts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// getPost godoc
// @Summary Get a post by ID
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} domain.Post
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /post/{id} [get]
func (h *postHandler) getPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("id")

	post, err := h.postService.GetPostByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		logger.Error("Failed to get post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get post"})
		return
	}

	c.JSON(http.StatusOK, post)
}
