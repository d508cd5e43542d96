package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/learnhub/internal/inference/engine"
	"github.com/yungbote/learnhub/internal/inference/router"
	"github.com/yungbote/learnhub/internal/observability"
	"github.com/yungbote/learnhub/internal/platform/apierr"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

// ChatService answers the assistant endpoint with one of the configured engines.
type ChatService interface {
	Reply(ctx context.Context, model string, message string) (string, error)
	Models() []string
}

type chatService struct {
	log     *logger.Logger
	router  *router.Router
	metrics *observability.Metrics
}

func NewChatService(log *logger.Logger, r *router.Router, metrics *observability.Metrics) ChatService {
	return &chatService{
		log:     log.With("service", "ChatService"),
		router:  r,
		metrics: metrics,
	}
}

func (s *chatService) Models() []string {
	return s.router.ListModels()
}

// Reply uses the default route when model is empty.
func (s *chatService) Reply(ctx context.Context, model string, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("message is required: %w", apierr.ErrInvalidArgument)
	}

	route := s.router.Default()
	if m := strings.TrimSpace(model); m != "" {
		r, ok := s.router.RouteForModel(m)
		if !ok {
			return "", fmt.Errorf("unknown model %q: %w", m, apierr.ErrInvalidArgument)
		}
		route = r
	}

	start := time.Now()
	out, err := route.Generate(ctx, []engine.Message{{Role: "user", Content: message}})
	s.metrics.ObserveEngine(route.PublicModel, route.EngineType, err, time.Since(start))
	if err != nil {
		s.log.Error("chat engine failed", "model", route.PublicModel, "engine", route.EngineType, "error", err)
		return "", fmt.Errorf("%s: %v: %w", route.PublicModel, err, apierr.ErrUpstream)
	}
	return out, nil
}
