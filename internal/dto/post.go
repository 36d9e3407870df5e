package dto

// CreatePostRequest carries the fields for a new post. The author is the
// authenticated caller, never a body field.
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ListPostsParams defines query parameters for listing posts.
type ListPostsParams struct {
	Sender string `form:"sender"` // Optional author UserID filter
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}
