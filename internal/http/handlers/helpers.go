package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnhub/internal/http/response"
	"github.com/yungbote/learnhub/internal/platform/ctxutil"
)

var errNoSession = errors.New("no session")

// sessionID returns the id attached by the session middleware, writing a 500
// when it is missing.
func sessionID(c *gin.Context) (string, bool) {
	id := ctxutil.SessionID(c.Request.Context())
	if id == "" {
		response.RespondError(c, http.StatusInternalServerError, "session_missing", errNoSession)
		return "", false
	}
	return id, true
}

type messageRequest struct {
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}
