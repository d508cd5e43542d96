package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnhub/internal/services"
)

type HealthHandler struct {
	catalog services.CatalogService
}

// NewHealthHandler reports ok when the catalog can be listed. A nil catalog
// makes the check unconditional.
func NewHealthHandler(catalog services.CatalogService) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.catalog != nil {
		if _, err := h.catalog.Subjects(c.Request.Context()); err != nil {
			c.String(http.StatusServiceUnavailable, "catalog unavailable")
			return
		}
	}
	c.String(http.StatusOK, "ok")
}
