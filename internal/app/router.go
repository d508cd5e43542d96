package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnhub/internal/config"
	apphttp "github.com/yungbote/learnhub/internal/http"
	httpMW "github.com/yungbote/learnhub/internal/http/middleware"
	"github.com/yungbote/learnhub/internal/observability"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg *config.Config, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	return apphttp.NewRouter(apphttp.RouterConfig{
		Log:             log,
		ServiceName:     cfg.OTel.ServiceName,
		Metrics:         metrics,
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		MaxRequestBytes: cfg.HTTP.MaxRequestBytes,
		Session: httpMW.SessionOptions{
			CookieName: cfg.HTTP.SessionCookie,
			Secure:     cfg.HTTP.SecureCookie,
			MaxAge:     cfg.Session.TTL.Duration,
		},
		CoursePath:     cfg.HTTP.CoursePath,
		PageHandler:    handlers.Page,
		CatalogHandler: handlers.Catalog,
		SessionHandler: handlers.Session,
		ChatHandler:    handlers.Chat,
		HealthHandler:  handlers.Health,
	})
}
