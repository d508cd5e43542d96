package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/learnhub/internal/platform/ctxutil"
)

const DefaultSessionCookie = "learnhub_session"

type SessionOptions struct {
	CookieName string
	Secure     bool
	MaxAge     time.Duration
}

// Session attaches the browser session id to the request context, issuing a
// new uuid cookie when the request carries none or a malformed one.
func Session(opts SessionOptions) gin.HandlerFunc {
	name := strings.TrimSpace(opts.CookieName)
	if name == "" {
		name = DefaultSessionCookie
	}
	return func(c *gin.Context) {
		id := ""
		if raw, err := c.Cookie(name); err == nil {
			if parsed, err := uuid.Parse(strings.TrimSpace(raw)); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
		}
		// Refreshed on every request so the cookie lives as long as the session.
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    id,
			Path:     "/",
			MaxAge:   int(opts.MaxAge.Seconds()),
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		c.Request = c.Request.WithContext(ctxutil.WithSessionID(c.Request.Context(), id))
		c.Set("session_id", id)
		c.Next()
	}
}
