package services

import (
	"context"

	"github.com/blogrest/blog_backend/internal/core/domain"
	"github.com/blogrest/blog_backend/internal/dto"
)

// TokenPair carries the two tokens issued at login. The access token is
// short-lived and never persisted; the refresh token is stored verbatim on the
// user record and stays valid until logout or the next login overwrites it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthSvcFacade defines the authentication flow: credential issuance, token
// lifecycle, and session teardown.
type AuthSvcFacade interface {
	// Register creates a new user with a hashed password and no active
	// session. It fails with apperrors.ErrDuplicate when the username or the
	// email is already taken (one combined failure mode).
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies the credentials and issues a fresh token pair,
	// overwriting any previously stored refresh token. Unknown email and
	// wrong password both fail with apperrors.ErrUnauthorized.
	Login(ctx context.Context, email, password string) (*TokenPair, error)

	// Logout clears the stored refresh token of the already-authenticated
	// user. No request-supplied refresh token is read or compared.
	Logout(ctx context.Context, userID string) error

	// RefreshAccessToken verifies a presented refresh token against the
	// refresh secret and the stored value, and issues a new access token
	// only. Signature/expiry failures yield apperrors.ErrUnauthorized; a
	// missing subject or stored-token mismatch yields
	// apperrors.ErrInvalidRefreshToken.
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}
