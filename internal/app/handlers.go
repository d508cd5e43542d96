package app

import (
	"fmt"

	"github.com/yungbote/learnhub/internal/config"
	httpH "github.com/yungbote/learnhub/internal/http/handlers"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/web"
)

type Handlers struct {
	Page    *httpH.PageHandler
	Catalog *httpH.CatalogHandler
	Session *httpH.SessionHandler
	Chat    *httpH.ChatHandler
	Health  *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, cfg *config.Config, svcs Services) (Handlers, error) {
	log.Info("Wiring handlers...")
	renderer, err := web.NewRenderer()
	if err != nil {
		return Handlers{}, fmt.Errorf("init templates: %w", err)
	}
	return Handlers{
		Page:    httpH.NewPageHandler(log, svcs.View, svcs.Catalog, svcs.Tutor, svcs.Assistant, renderer),
		Catalog: httpH.NewCatalogHandler(log, svcs.Catalog, cfg.HTTP.CoursePath),
		Session: httpH.NewSessionHandler(log, svcs.View),
		Chat:    httpH.NewChatHandler(log, svcs.Tutor, svcs.Assistant, svcs.Chat),
		Health:  httpH.NewHealthHandler(svcs.Catalog),
	}, nil
}
