package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/learnhub/internal/inference/engine"
)

// Engine echoes the last user message back.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) GenerateText(ctx context.Context, _ string, messages []engine.Message, _ engine.GenerateOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	user := engine.LastUserMessage(messages)
	if strings.TrimSpace(user) == "" {
		return "mock: ok", nil
	}
	return fmt.Sprintf("mock: %s", user), nil
}
