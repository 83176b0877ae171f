package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BIG-PRIMEZ/mortgage-prequalification/utils"
)

const (
	SessionCookie = "mpq_session"
	sessionTTL    = 24 * time.Hour
)

// Session resolves the caller's session key from a signed cookie, minting a
// fresh session when the cookie is absent or tampered with. Handlers read
// the key via c.GetString("session_id").
func Session(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil {
			if claims, err := utils.ParseSessionToken(secret, token); err == nil {
				c.Set("session_id", claims.SessionID)
				c.Next()
				return
			}
		}
		sid := uuid.NewString()
		token, err := utils.GenerateSessionToken(secret, sid, sessionTTL)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session error"})
			return
		}
		c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
		c.Set("session_id", sid)
		c.Next()
	}
}
