package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnhub/internal/http/response"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/services"
)

type SessionHandler struct {
	log  *logger.Logger
	view services.ViewService
}

func NewSessionHandler(log *logger.Logger, view services.ViewService) *SessionHandler {
	return &SessionHandler{
		log:  log.With("handler", "SessionHandler"),
		view: view,
	}
}

// GET /api/session
func (h *SessionHandler) GetSession(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	page, err := h.view.Page(c.Request.Context(), sid)
	if err != nil {
		h.log.Error("GetSession failed", "error", err, "session_id", sid)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, page)
}

type levelRequest struct {
	Level string `json:"level"`
}

// POST /api/session/level
func (h *SessionHandler) SetLevel(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req levelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	st, err := h.view.ShowLevel(c.Request.Context(), sid, req.Level)
	if err != nil {
		h.log.Error("SetLevel failed", "error", err, "session_id", sid)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"level": st.Level, "state": st})
}

type subjectRequest struct {
	Subject string `json:"subject"`
}

// POST /api/session/subject
func (h *SessionHandler) SetSubject(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req subjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	view, err := h.view.SelectSubject(c.Request.Context(), sid, req.Subject)
	if err != nil {
		h.log.Error("SetSubject failed", "error", err, "session_id", sid)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"courses": view})
}
