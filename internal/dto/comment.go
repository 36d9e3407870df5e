package dto

// CreateCommentRequest carries the fields for a new comment. The author is the
// authenticated caller's username, never a body field.
type CreateCommentRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateCommentRequest carries the updatable comment fields.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
