package app

import (
	"context"
	"fmt"

	"github.com/yungbote/learnhub/internal/clients/assistant"
	"github.com/yungbote/learnhub/internal/config"
	"github.com/yungbote/learnhub/internal/inference/router"
	"github.com/yungbote/learnhub/internal/observability"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/services"
	"github.com/yungbote/learnhub/internal/session"
)

type Services struct {
	Catalog   services.CatalogService
	View      services.ViewService
	Tutor     services.TutorService
	Assistant services.AssistantService
	Chat      services.ChatService
}

func wireServices(
	ctx context.Context,
	log *logger.Logger,
	cfg *config.Config,
	repos Repos,
	sessions session.Store,
	metrics *observability.Metrics,
) (Services, error) {
	log.Info("Wiring services...")

	catalogSvc := services.NewCatalogService(log, repos.Subjects)

	client, err := assistant.NewClient(log, cfg.Assistant.Endpoint, cfg.Assistant.Timeout.Duration)
	if err != nil {
		return Services{}, fmt.Errorf("init assistant client: %w", err)
	}

	r, err := router.New(ctx, cfg)
	if err != nil {
		return Services{}, fmt.Errorf("init model router: %w", err)
	}

	return Services{
		Catalog:   catalogSvc,
		View:      services.NewViewService(log, catalogSvc, sessions, cfg.HTTP.CoursePath),
		Tutor:     services.NewTutorService(log, catalogSvc, sessions, cfg.Tutor.TypingDelay.Duration, metrics),
		Assistant: services.NewAssistantService(log, client, sessions, metrics),
		Chat:      services.NewChatService(log, r, metrics),
	}, nil
}
