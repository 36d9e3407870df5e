package domain

import "time"

// User represents a registered user of the application in the domain.
// PasswordHash and RefreshToken are secrets and are never serialized in API
// responses; handlers expose users through dto.UserResponse instead.
type User struct {
	UserID       string  `json:"userID"` // Primary Key (UUID)
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	RefreshToken *string `json:"-"` // At most one outstanding refresh token; nil when logged out
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
