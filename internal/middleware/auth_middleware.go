package middleware

import (
	"net/http"
	"strings"

	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// RequireAuth is a Gin middleware for JWT authentication of API requests.
// It checks for a bearer token in the Authorization header and resolves it
// to an active user before the handler runs.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, authService)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and lets the
// request continue anonymously otherwise.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, authService); ok {
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUsername, claims.Username)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, authService service.AuthService) (*service.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := authService.ValidateToken(c.Request.Context(), parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// CurrentUserID returns the authenticated user's id from the gin context.
func CurrentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
