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

// commentHandler handles HTTP requests related to comments.
type commentHandler struct {
	commentService portssvc.CommentSvcFacade
}

func newCommentHandler(cs portssvc.CommentSvcFacade) *commentHandler {
	return &commentHandler{
		commentService: cs,
	}
}

// registerCommentRoutes registers all comment-related routes.
func registerCommentRoutes(rg *gin.RouterGroup, commentService portssvc.CommentSvcFacade) {
	h := newCommentHandler(commentService)

	comments := rg.Group("/comment")
	{
		comments.GET("", h.listComments)
		comments.GET("/post/:postId", h.listCommentsByPost)
		comments.GET("/:id", h.getComment)
		comments.POST("", h.createComment)
		comments.PUT("/:id", h.updateComment)
		comments.DELETE("/:id", h.deleteComment)
	}
}

// listComments godoc
// @Summary List all comments
// @Tags comments
// @Produce json
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.Comment
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /comment [get]
func (h *commentHandler) listComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list comments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// listCommentsByPost godoc
// @Summary List comments for a post
// @Tags comments
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {array} domain.Comment
// @Failure 404 {object} ErrorResponse "Post not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /comment/post/{postId} [get]
func (h *commentHandler) listCommentsByPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("postId")

	comments, err := h.commentService.ListCommentsByPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		logger.Error("Failed to list comments for post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// getComment godoc
// @Summary Get a comment by ID
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} domain.Comment
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /comment/{id} [get]
func (h *commentHandler) getComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commentID := c.Param("id")

	comment, err := h.commentService.GetCommentByID(c.Request.Context(), commentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Comment not found"})
			return
		}
		logger.Error("Failed to get comment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// createComment godoc
// @Summary Create a comment on a post
// @Description The comment author is the authenticated user's username.
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Post not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /comment [post]
func (h *commentHandler) createComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user := middleware.GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not authorized"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), user.Username, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		logger.Error("Failed to create comment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// updateComment godoc
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "Updated content"
// @Success 200 {object} domain.Comment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /comment/{id} [put]
func (h *commentHandler) updateComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commentID := c.Param("id")

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Comment not found"})
			return
		}
		logger.Error("Failed to update comment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// deleteComment godoc
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /comment/{id} [delete]
func (h *commentHandler) deleteComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commentID := c.Param("id")

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Comment not found"})
			return
		}
		logger.Error("Failed to delete comment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted successfully"})
}
