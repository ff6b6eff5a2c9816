package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie carries the anonymous session id.
	SessionCookie = "sid"
	sessionMaxAge = 7 * 24 * 60 * 60
	sessionCtxKey = "sessionID"
)

// Session assigns every visitor an anonymous session id. Existing
// cookies are kept; a missing or malformed one is replaced with a
// fresh uuid. No identity is attached to the id.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" || uuid.Validate(sid) != nil {
			sid = uuid.Must(uuid.NewV7()).String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, sid)
		c.Next()
	}
}

// GetSessionID returns the request's session id. The Session middleware
// guarantees one is present on every route that uses it.
func GetSessionID(c *gin.Context) string {
	sid, _ := c.Get(sessionCtxKey)
	if s, ok := sid.(string); ok {
		return s
	}
	return ""
}
