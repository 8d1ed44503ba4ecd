package auth

import (
	"context"
	"net/http"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "session_id"

const contextKeyIdentity = "identity"

// Identity is the authenticated caller as seen by handlers.
type Identity struct {
	UserID    int64
	CompanyID int64
	Role      dom.Role
}

// UserLoader resolves a session's user ID to the full account.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (dom.User, error)
}

// IdentityFromContext returns the identity set by RequireSession. The zero
// Identity means an unauthenticated request slipped past the middleware.
func IdentityFromContext(c *gin.Context) Identity {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return Identity{}
	}
	id, ok := v.(Identity)
	if !ok {
		return Identity{}
	}
	return id
}

// RequireSession returns a middleware that checks for a valid session cookie,
// loads the account and puts the caller's identity in context. Missing or
// invalid sessions get 401.
func RequireSession(sessions *Store, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		userID, ok := sessions.GetUserID(c.Request.Context(), sessionID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			// Session outlived the account.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyIdentity, Identity{UserID: u.ID, CompanyID: u.CompanyID, Role: u.Role})
		c.Next()
	}
}

// RequireAdmin returns a middleware that gates admin-only routes. Must run
// after RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFromContext(c).Role != dom.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}
