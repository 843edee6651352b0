package middleware

import (
	"net/http"
	"strings"

	"estateoffice/internal/pkg/capability"
	jwtsvc "estateoffice/internal/pkg/jwt"
	"estateoffice/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by Auth and read by handlers and guards.
const (
	CtxUserID       = "user_id"
	CtxRole         = "role"
	CtxCapabilities = "capabilities"
)

// Auth validates the bearer token and injects the auth context: user id,
// role and the derived capability set. Claims are parsed exactly once here;
// nothing downstream touches the raw token.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxCapabilities, capability.ForRole(claims.Role))

		c.Next()
	}
}

// RequireCapability guards a route group behind a single capability check.
func RequireCapability(cap capability.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(CtxCapabilities)
		if !exists {
			abortUnauthorized(c, "Authentication required")
			return
		}
		set, ok := v.(capability.Set)
		if !ok || !set.Has(cap) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
