package models

import "time"

// Post is the persistence model for a post row.
type Post struct {
	PostID    string    `db:"post_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	AuthorID  string    `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
