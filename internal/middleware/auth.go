package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LucieneFagundes/daily-diet-api/internal/utils"
)

const (
	userIDContextKey = "user_id"
	sessionCookie    = "session_id"
)

// UserIDFromContext returns the authenticated user id set by AuthMiddleware,
// or false when the request was not authenticated.
func UserIDFromContext(c *gin.Context) (string, bool) {
	value, ok := c.Get(userIDContextKey)
	if !ok {
		return "", false
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// AuthMiddleware gates owner-scoped routes. It accepts a bearer token in the
// Authorization header, falling back to the session_id cookie, validates it,
// and stores the token's user id for request scoping. It deliberately does
// not confirm the id against the user store: a token for an unknown id gets
// empty lists and not-found answers downstream, never another owner's rows.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				tokenString = strings.TrimSpace(cookie)
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
