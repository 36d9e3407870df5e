package dto

// RegisterRequest carries the credentials for creating a new account.
// The password is validated by the custom "password" binding rule registered
// in handlers.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is returned on successful registration. The password hash
// is never echoed.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LogoutResponse confirms a cleared session.
type LogoutResponse struct {
	Message string `json:"message"`
}

// RefreshTokenRequest carries the refresh token presented for renewal.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenResponse carries the newly issued access token. The refresh
// token is not rotated by this flow.
type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
