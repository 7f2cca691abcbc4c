package middleware

import (
	apperrors "github.com/amancoderhub/EMS-Event-management-System/common/errors"
	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/gin-gonic/gin"
)

// SessionContextKey holds the *models.Session admitted by RequireRole.
const SessionContextKey = "session"

// SessionReader exposes the active session.
type SessionReader interface {
	Session() *models.Session
}

// RequireRole admits requests only while the active session has one of roles.
func RequireRole(sessions SessionReader, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Session()
		if sess == nil {
			_ = c.Error(apperrors.ErrUnauthorized)
			c.Abort()
			return
		}
		for _, r := range roles {
			if sess.Role == r {
				c.Set(SessionContextKey, sess)
				c.Next()
				return
			}
		}
		_ = c.Error(apperrors.ErrForbidden.WithMessage(string(roles[0]) + " role required"))
		c.Abort()
	}
}

// GetSession returns the session stored by RequireRole.
func GetSession(c *gin.Context) (*models.Session, bool) {
	val, ok := c.Get(SessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := val.(*models.Session)
	return sess, ok && sess != nil
}
