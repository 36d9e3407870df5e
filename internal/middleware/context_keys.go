package middleware

import (
	"github.com/blogrest/blog_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// authUserKey is the key under which the access gate stores the resolved user
// in the request context.
const authUserKey = contextKey("authUser")

// GetAuthUser retrieves the authenticated user attached by AuthMiddleware.
// It returns nil when the request did not pass through the gate, so handlers
// behind it can treat nil as "not authorized".
func GetAuthUser(c *gin.Context) *domain.User {
	user, ok := c.Request.Context().Value(authUserKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
