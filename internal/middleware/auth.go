package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool/internal/session"
)

// SessionCookie is the name of the cookie carrying the session ID.
const SessionCookie = "session_id"

const (
	contextSessionKey   = "session"
	contextSessionIDKey = "sessionID"
)

// SessionMiddleware resolves the session cookie against the store and, when
// valid, attaches the session to the request context. It never aborts;
// gating is left to RequireSession / RequirePageSession.
func SessionMiddleware(sessions session.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			c.Next()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), id)
		if err != nil || sess == nil {
			// Expired or unreadable session: treat as anonymous.
			c.Next()
			return
		}

		c.Set(contextSessionKey, sess)
		c.Set(contextSessionIDKey, id)
		c.Next()
	}
}

// RequireSession rejects unauthenticated API requests with 401.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePageSession redirects unauthenticated page requests to the login
// page instead of returning an error body.
func RequirePageSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession extracts the authenticated session from the request context.
func GetSession(c *gin.Context) (*session.Session, bool) {
	val, exists := c.Get(contextSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := val.(*session.Session)
	return sess, ok
}

// GetSessionID extracts the session ID from the request context.
func GetSessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get(contextSessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}
