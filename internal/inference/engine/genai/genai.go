package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/yungbote/learnhub/internal/inference/engine"
)

// Engine answers through the Gemini API.
type Engine struct {
	client *genai.Client
}

func New(ctx context.Context, apiKey string) (*Engine, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("genai: api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Engine{client: client}, nil
}

func (e *Engine) GenerateText(ctx context.Context, model string, messages []engine.Message, opts engine.GenerateOptions) (string, error) {
	contents, system := toContents(messages, opts.System)
	if len(contents) == 0 {
		return "", errors.New("genai: no messages")
	}

	cfg := &genai.GenerateContentConfig{}
	if opts.Temperature > 0 {
		t := float32(opts.Temperature)
		cfg.Temperature = &t
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := e.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("genai: empty response")
	}
	return text, nil
}

// toContents converts the conversation into Gemini turns. System messages are
// folded into the system instruction since Gemini has no system role.
func toContents(messages []engine.Message, system string) ([]*genai.Content, string) {
	var sys []string
	if s := strings.TrimSpace(system); s != "" {
		sys = append(sys, s)
	}
	out := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(m.Role)) {
		case "system":
			sys = append(sys, content)
		case "assistant", "model":
			out = append(out, genai.NewContentFromText(content, genai.RoleModel))
		default:
			out = append(out, genai.NewContentFromText(content, genai.RoleUser))
		}
	}
	return out, strings.Join(sys, "\n\n")
}
