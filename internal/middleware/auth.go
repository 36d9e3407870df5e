package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/blogrest/blog_backend/internal/core/ports/services"
	"github.com/blogrest/blog_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// AuthMiddleware creates the access gate for protected routes: it validates
// the bearer access token, resolves its subject to a live user record, and
// attaches that user to the request context. Every failure short-circuits with
// the same generic 403 so callers learn nothing about why they were rejected.
// Each protected request pays one store lookup; tokens for users deleted after
// issuance are still cryptographically valid but fail resolution here.
func AuthMiddleware(jwtSecret string, userService portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		// The scheme is explicitly "Bearer <token>"; anything else is
		// rejected rather than split on whitespace and guessed at.
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			logger.Warn("Authorization token missing")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil || claims.Subject == "" {
			logger.Warn("Invalid access token", "error", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		user, err := userService.GetUserByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Warn("Failed to resolve token subject", "error", err)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		// Attach the resolved user and a user-enriched logger to the request
		// context for downstream handlers.
		ctxWithUser := context.WithValue(c.Request.Context(), authUserKey, user)
		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
