package models

import (
	"database/sql"
	"time"
)

// User is the persistence model for a user row.
// RefreshToken stores the most recently issued refresh token verbatim; refresh
// verification compares the presented token against it byte-for-byte.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	RefreshToken sql.NullString `db:"refresh_token"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
