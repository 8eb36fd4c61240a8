package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/genx-realty/console/api/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey is the context key for the authenticated user's ID
	UserIDKey = "user_id"
	// SessionTokenKey is the context key for the bearer token of the request
	SessionTokenKey = "session_token"
)

// SessionValidator resolves a bearer token to an active session.
// A nil session with a nil error means the token is unknown or expired.
type SessionValidator interface {
	ValidateToken(ctx context.Context, token string) (*models.Session, error)
}

// RequireSession is the session gate guarding every authenticated route.
// It extracts the bearer token, validates it against the session store, and
// fails closed with 401 before any handler work when the session is absent
// or expired. The resolved user ID is stored in the Gin context for
// handlers and the request logger.
func RequireSession(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c, "Not authenticated")
			return
		}

		session, err := sessions.ValidateToken(c.Request.Context(), token)
		if err != nil {
			requestID := GetRequestID(c)
			if log := GetLogger(c); log != nil {
				log.Error("Session validation failed", err, map[string]interface{}{
					"request_id": requestID,
					"path":       c.Request.URL.Path,
				})
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":       "INTERNAL_SERVER_ERROR",
					"message":    "Failed to verify session",
					"request_id": requestID,
				},
			})
			c.Abort()
			return
		}
		if session == nil {
			unauthorized(c, "Session is invalid or expired")
			return
		}

		c.Set(UserIDKey, session.UserID)
		c.Set(SessionTokenKey, session.Token)

		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header.
// Returns an empty string when the header is missing or malformed.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// unauthorized writes the 401 envelope directly. The errors package depends
// on this one, so the gate cannot use its helpers.
func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":       "UNAUTHORIZED",
			"message":    message,
			"request_id": GetRequestID(c),
		},
	})
	c.Abort()
}

// GetUserID retrieves the authenticated user's ID from the Gin context.
// Returns an empty string outside the session gate.
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

// GetSessionToken retrieves the request's bearer token from the Gin context.
func GetSessionToken(c *gin.Context) string {
	if token, exists := c.Get(SessionTokenKey); exists {
		if t, ok := token.(string); ok {
			return t
		}
	}
	return ""
}
