package router

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/learnhub/internal/config"
	"github.com/yungbote/learnhub/internal/inference/engine"
	"github.com/yungbote/learnhub/internal/inference/engine/genai"
	"github.com/yungbote/learnhub/internal/inference/engine/mock"
	"github.com/yungbote/learnhub/internal/inference/engine/oaihttp"
	"github.com/yungbote/learnhub/internal/inference/engine/offline"
)

type Route struct {
	PublicModel   string
	UpstreamModel string
	EngineType    string
	Engine        engine.Engine
	System        string
}

// Generate runs the route's engine inside a span.
func (r Route) Generate(ctx context.Context, messages []engine.Message) (string, error) {
	ctx, span := otel.Tracer("learnhub/inference").Start(ctx, "inference.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("inference.model", r.PublicModel),
		attribute.String("inference.engine", r.EngineType),
	)

	out, err := r.Engine.GenerateText(ctx, r.UpstreamModel, messages, engine.GenerateOptions{System: r.System})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return out, nil
}

type Router struct {
	routes       map[string]Route
	defaultModel string
}

func New(ctx context.Context, cfg *config.Config) (*Router, error) {
	r := &Router{routes: map[string]Route{}, defaultModel: strings.TrimSpace(cfg.Assistant.Model)}
	for _, m := range cfg.Models {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			return nil, fmt.Errorf("model id required")
		}
		if _, exists := r.routes[id]; exists {
			return nil, fmt.Errorf("duplicate model id: %s", id)
		}

		typ := strings.ToLower(strings.TrimSpace(m.Engine.Type))
		var eng engine.Engine
		switch typ {
		case config.EngineOffline:
			eng = offline.New()
		case config.EngineMock:
			eng = mock.New()
		case config.EngineGenAI:
			e, err := genai.New(ctx, m.Engine.APIKey)
			if err != nil {
				return nil, fmt.Errorf("model %q: %w", id, err)
			}
			eng = e
		case "openai_http", config.EngineOAIHTTP:
			e, err := oaihttp.New(m.Engine)
			if err != nil {
				return nil, fmt.Errorf("model %q: %w", id, err)
			}
			eng = e
		default:
			return nil, fmt.Errorf("unsupported engine type %q for model %q", m.Engine.Type, id)
		}

		upstream := strings.TrimSpace(m.UpstreamModel)
		if upstream == "" {
			upstream = id
		}

		r.routes[id] = Route{
			PublicModel:   id,
			UpstreamModel: upstream,
			EngineType:    typ,
			Engine:        eng,
			System:        strings.TrimSpace(m.Engine.SystemPrompt),
		}
	}
	if r.defaultModel == "" && len(cfg.Models) > 0 {
		r.defaultModel = strings.TrimSpace(cfg.Models[0].ID)
	}
	if _, ok := r.routes[r.defaultModel]; !ok {
		return nil, fmt.Errorf("default model %q is not configured", r.defaultModel)
	}
	return r, nil
}

func (r *Router) ListModels() []string {
	out := make([]string, 0, len(r.routes))
	for id := range r.routes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (r *Router) RouteForModel(model string) (Route, bool) {
	route, ok := r.routes[strings.TrimSpace(model)]
	return route, ok
}

// Default is the route answering the assistant endpoint.
func (r *Router) Default() Route {
	return r.routes[r.defaultModel]
}
