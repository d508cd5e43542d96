package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/http/response"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/services"
)

type CatalogHandler struct {
	log        *logger.Logger
	catalog    services.CatalogService
	coursePath string
}

func NewCatalogHandler(log *logger.Logger, catalog services.CatalogService, coursePath string) *CatalogHandler {
	return &CatalogHandler{
		log:        log.With("handler", "CatalogHandler"),
		catalog:    catalog,
		coursePath: coursePath,
	}
}

// GET /api/subjects?level=
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		subjects []catalog.Subject
		err      error
	)
	if raw, set := c.GetQuery("level"); set {
		level, _ := catalog.ParseLevel(raw)
		subjects, err = h.catalog.SubjectsByLevel(ctx, level)
	} else {
		subjects, err = h.catalog.Subjects(ctx)
	}
	if err != nil {
		h.log.Error("ListSubjects failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"subjects": subjects})
}

// GET /api/subjects/:name
func (h *CatalogHandler) GetSubject(c *gin.Context) {
	sub, err := h.catalog.Subject(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"subject": sub})
}

// GET /api/courses/url?title=
func (h *CatalogHandler) CourseURL(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("title is required"))
		return
	}
	response.RespondOK(c, gin.H{"url": services.CourseURL(h.coursePath, title)})
}
