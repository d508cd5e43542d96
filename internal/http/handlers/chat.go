package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnhub/internal/http/response"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/services"
)

type ChatHandler struct {
	log       *logger.Logger
	tutor     services.TutorService
	assistant services.AssistantService
	chat      services.ChatService
}

func NewChatHandler(
	log *logger.Logger,
	tutor services.TutorService,
	assistant services.AssistantService,
	chat services.ChatService,
) *ChatHandler {
	return &ChatHandler{
		log:       log.With("handler", "ChatHandler"),
		tutor:     tutor,
		assistant: assistant,
		chat:      chat,
	}
}

// POST /api/chat
func (h *ChatHandler) SendTutor(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.tutor.SendMessage(c.Request.Context(), sid, req.Message)
	if err != nil {
		h.log.Error("SendTutor failed", "error", err, "session_id", sid)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/chat
func (h *ChatHandler) TutorTranscript(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	msgs, err := h.tutor.Transcript(c.Request.Context(), sid)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"messages": msgs})
}

// POST /api/assistant
func (h *ChatHandler) SendAssistant(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.assistant.SendAIMessage(c.Request.Context(), sid, req.Message)
	if err != nil {
		h.log.Error("SendAssistant failed", "error", err, "session_id", sid)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/assistant
func (h *ChatHandler) AssistantTranscript(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	msgs, err := h.assistant.Transcript(c.Request.Context(), sid)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"messages": msgs})
}

// POST /api/gemini-chat answers {message} with {response}.
func (h *ChatHandler) GeminiChat(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	out, err := h.chat.Reply(c.Request.Context(), req.Model, req.Message)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"response": out})
}

// GET /api/models
func (h *ChatHandler) ListModels(c *gin.Context) {
	response.RespondOK(c, gin.H{"models": h.chat.Models()})
}
