package offline

import (
	"context"
	"strings"

	"github.com/yungbote/learnhub/internal/inference/engine"
)

const (
	ReplyMath     = "Mathematics is the study of numbers, shapes, and patterns. Would you like a lesson plan or a fun fact?"
	ReplyScience  = "Science helps us understand the world around us. Ask me about biology, chemistry, or physics!"
	ReplyHistory  = "History is the study of past events. Want to know about ancient civilizations or modern history?"
	ReplyCourses  = "Click on any subject above to see suggested courses for that level!"
	ReplyGreeting = "Hello! I am your AI Tutor. Ask me anything about your subjects."
	ReplyFallback = "I am your offline AI Tutor. Ask me about any subject or course!"
)

// Reply maps a message to a fixed answer by keyword, first match wins:
// math, science, history, course|suggest, hello|hi, otherwise the fallback.
// Matching is plain substring on the lower-cased message, so "this" counts as "hi".
func Reply(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "math"):
		return ReplyMath
	case strings.Contains(msg, "science"):
		return ReplyScience
	case strings.Contains(msg, "history"):
		return ReplyHistory
	case strings.Contains(msg, "course"), strings.Contains(msg, "suggest"):
		return ReplyCourses
	case strings.Contains(msg, "hello"), strings.Contains(msg, "hi"):
		return ReplyGreeting
	default:
		return ReplyFallback
	}
}

// Engine answers with Reply on the last user message. It never fails.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) GenerateText(ctx context.Context, _ string, messages []engine.Message, _ engine.GenerateOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Reply(engine.LastUserMessage(messages)), nil
}
