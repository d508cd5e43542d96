package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/learnhub/internal/http/handlers"
	httpMW "github.com/yungbote/learnhub/internal/http/middleware"
	"github.com/yungbote/learnhub/internal/observability"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	Metrics     *observability.Metrics

	CORSOrigins     []string
	MaxRequestBytes int64
	Session         httpMW.SessionOptions

	PageHandler    *httpH.PageHandler
	CatalogHandler *httpH.CatalogHandler
	SessionHandler *httpH.SessionHandler
	ChatHandler    *httpH.ChatHandler
	HealthHandler  *httpH.HealthHandler

	// CoursePath is where the course detail page is mounted.
	CoursePath string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.Use(httpMW.BodyLimit(cfg.MaxRequestBytes))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	// Pages
	if cfg.PageHandler != nil {
		coursePath := cfg.CoursePath
		if coursePath == "" {
			coursePath = "/course"
		}
		r.GET(coursePath, cfg.PageHandler.Course)

		pages := r.Group("/", httpMW.Session(cfg.Session))
		pages.GET("/", cfg.PageHandler.Index)
		pages.POST("/level", cfg.PageHandler.ShowLevel)
		pages.POST("/subjects/select", cfg.PageHandler.SelectSubject)
		pages.POST("/chat", cfg.PageHandler.SendTutor)
		pages.POST("/assistant", cfg.PageHandler.SendAssistant)
	}

	api := r.Group("/api")
	{
		// Catalog
		if cfg.CatalogHandler != nil {
			api.GET("/subjects", cfg.CatalogHandler.ListSubjects)
			api.GET("/subjects/:name", cfg.CatalogHandler.GetSubject)
			api.GET("/courses/url", cfg.CatalogHandler.CourseURL)
		}

		// Assistant endpoint (stateless)
		if cfg.ChatHandler != nil {
			api.POST("/gemini-chat", cfg.ChatHandler.GeminiChat)
			api.GET("/models", cfg.ChatHandler.ListModels)
		}
	}

	sessioned := api.Group("/", httpMW.Session(cfg.Session))
	{
		if cfg.SessionHandler != nil {
			sessioned.GET("/session", cfg.SessionHandler.GetSession)
			sessioned.POST("/session/level", cfg.SessionHandler.SetLevel)
			sessioned.POST("/session/subject", cfg.SessionHandler.SetSubject)
		}
		if cfg.ChatHandler != nil {
			sessioned.GET("/chat", cfg.ChatHandler.TutorTranscript)
			sessioned.POST("/chat", cfg.ChatHandler.SendTutor)
			sessioned.GET("/assistant", cfg.ChatHandler.AssistantTranscript)
			sessioned.POST("/assistant", cfg.ChatHandler.SendAssistant)
		}
	}

	return r
}
