package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogrest/blog_backend/internal/apperrors"
	"github.com/blogrest/blog_backend/internal/core/domain"
	portsrepo "github.com/blogrest/blog_backend/internal/core/ports/repositories"
	portssvc "github.com/blogrest/blog_backend/internal/core/ports/services"
	"github.com/blogrest/blog_backend/internal/dto"
	"github.com/blogrest/blog_backend/internal/platform/config"
	"github.com/blogrest/blog_backend/internal/utils"
	"github.com/google/uuid"
)

// authService implements the AuthSvcFacade on top of the user repository and
// the JWT helpers. Access and refresh tokens are both HS256 JWTs signed with
// distinct secrets; the refresh token is additionally stored verbatim on the
// user row so a stale or superseded token can be rejected.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing credentials: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicate
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		RefreshToken: nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// A concurrent registration can still hit the unique constraint.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return &user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*portssvc.TokenPair, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Collapse to the same failure as a wrong password so callers
			// cannot enumerate registered emails.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Overwrites any prior refresh token: a single active session per user,
	// last login wins.
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, &refreshToken); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &portssvc.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (s *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		// Expired, forged, or malformed: one generic rejection.
		return "", apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidRefreshToken
		}
		return "", fmt.Errorf("failed to look up user for refresh: %w", err)
	}

	// The stored value must equal the presented token byte-for-byte. A token
	// superseded by a newer login or cleared by logout fails here even though
	// its signature is still valid.
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}
