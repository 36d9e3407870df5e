package models

import "time"

// Comment is the persistence model for a comment row.
type Comment struct {
	CommentID string    `db:"comment_id"`
	PostID    string    `db:"post_id"`
	Content   string    `db:"content"`
	Author    string    `db:"author"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
