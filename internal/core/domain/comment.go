package domain

import "time"

// Comment represents a comment attached to a post.
type Comment struct {
	CommentID string `json:"commentID"` // Primary Key (UUID)
	PostID    string `json:"postID"`    // Must reference an existing post
	Content   string `json:"content"`
	Author    string `json:"author"` // Username of the authenticated creator
	CreatedAt time.Time
	UpdatedAt time.Time
}
