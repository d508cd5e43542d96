package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/services"
	"github.com/yungbote/learnhub/internal/web"
)

// PageHandler serves the server-rendered page and its form posts. Every post
// updates the session and redirects back to the index.
type PageHandler struct {
	log       *logger.Logger
	view      services.ViewService
	catalog   services.CatalogService
	tutor     services.TutorService
	assistant services.AssistantService
	renderer  *web.Renderer
}

func NewPageHandler(
	log *logger.Logger,
	view services.ViewService,
	catalog services.CatalogService,
	tutor services.TutorService,
	assistant services.AssistantService,
	renderer *web.Renderer,
) *PageHandler {
	return &PageHandler{
		log:       log.With("handler", "PageHandler"),
		view:      view,
		catalog:   catalog,
		tutor:     tutor,
		assistant: assistant,
		renderer:  renderer,
	}
}

func (h *PageHandler) Index(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	page, err := h.view.Page(ctx, sid)
	if err != nil {
		h.log.Error("Index failed", "error", err, "session_id", sid)
		c.String(http.StatusInternalServerError, "failed to load page")
		return
	}
	byLevel := make(map[catalog.Level][]catalog.Subject, len(catalog.Levels))
	for _, l := range catalog.Levels {
		subs, err := h.catalog.SubjectsByLevel(ctx, l)
		if err != nil {
			h.log.Error("Index failed", "error", err, "level", l)
			c.String(http.StatusInternalServerError, "failed to load subjects")
			return
		}
		byLevel[l] = subs
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.renderer.Index(c.Writer, web.BuildIndex(page, byLevel)); err != nil {
		h.log.Error("render index failed", "error", err)
	}
}

func (h *PageHandler) ShowLevel(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	if _, err := h.view.ShowLevel(c.Request.Context(), sid, c.PostForm("level")); err != nil {
		h.log.Error("ShowLevel failed", "error", err, "session_id", sid)
		c.String(http.StatusInternalServerError, "failed to switch level")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) SelectSubject(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	if _, err := h.view.SelectSubject(c.Request.Context(), sid, c.PostForm("subject")); err != nil {
		h.log.Error("SelectSubject failed", "error", err, "session_id", sid)
		c.String(http.StatusInternalServerError, "failed to select subject")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) SendTutor(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	if _, err := h.tutor.SendMessage(c.Request.Context(), sid, c.PostForm("message")); err != nil {
		h.log.Error("SendTutor failed", "error", err, "session_id", sid)
		c.String(http.StatusInternalServerError, "failed to send message")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) SendAssistant(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	if _, err := h.assistant.SendAIMessage(c.Request.Context(), sid, c.PostForm("message")); err != nil {
		h.log.Error("SendAssistant failed", "error", err, "session_id", sid)
		c.String(http.StatusInternalServerError, "failed to send message")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Course renders the detail page for the title carried in ?course=.
func (h *PageHandler) Course(c *gin.Context) {
	title, ok := services.CourseTitle(c.Request.URL.Query())
	if !ok {
		c.String(http.StatusBadRequest, "missing course")
		return
	}
	detail, err := h.catalog.CourseDetail(c.Request.Context(), title)
	if err != nil {
		h.log.Error("Course failed", "error", err, "course", title)
		c.String(http.StatusInternalServerError, "failed to load course")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.renderer.Course(c.Writer, web.CourseData{Detail: detail}); err != nil {
		h.log.Error("render course failed", "error", err)
	}
}
