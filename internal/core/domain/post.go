package domain

import "time"

// Post represents a blog post in the domain.
type Post struct {
	PostID    string `json:"postID"` // Primary Key (UUID)
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  string `json:"authorID"` // UserID of the creator
	CreatedAt time.Time
	UpdatedAt time.Time
}
