package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/learnhub/internal/clients/assistant"
	"github.com/yungbote/learnhub/internal/domain/chat"
	"github.com/yungbote/learnhub/internal/observability"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/session"
)

type AssistantService interface {
	SendAIMessage(ctx context.Context, sessionID string, input string) (SendResult, error)
	Transcript(ctx context.Context, sessionID string) (chat.Transcript, error)
}

type assistantService struct {
	log      *logger.Logger
	client   assistant.Client
	sessions session.Store
	metrics  *observability.Metrics
}

func NewAssistantService(log *logger.Logger, client assistant.Client, sessions session.Store, metrics *observability.Metrics) AssistantService {
	return &assistantService{
		log:      log.With("service", "AssistantService"),
		client:   client,
		sessions: sessions,
		metrics:  metrics,
	}
}

func (s *assistantService) Transcript(ctx context.Context, sessionID string) (chat.Transcript, error) {
	st, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.Assistant, nil
}

// SendAIMessage shows the user bubble right away, then makes one request to
// the assistant endpoint. Failures become the fixed apology; there is no retry.
func (s *assistantService) SendAIMessage(ctx context.Context, sessionID string, input string) (SendResult, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		st, err := s.sessions.Get(ctx, sessionID)
		return SendResult{State: st}, err
	}

	var reqID uint64
	if _, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.Append(session.WidgetAssistant, chat.NewMessage(chat.RoleUser, text))
		reqID = st.NextRequest(session.WidgetAssistant)
		return nil
	}); err != nil {
		return SendResult{}, fmt.Errorf("append assistant message: %w", err)
	}

	answer, err := s.client.Chat(ctx, text)
	if err != nil {
		if ctx.Err() != nil {
			return SendResult{}, ctx.Err()
		}
		s.log.Warn("assistant unavailable", "session_id", sessionID, "error", err)
		answer = assistant.UnavailableReply
		s.metrics.IncChatReply(string(session.WidgetAssistant), "unavailable")
	}
	reply := chat.NewMessage(chat.RoleAssistant, answer)

	stale := false
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		if st.LatestRequest(session.WidgetAssistant) != reqID {
			stale = true
			return nil
		}
		st.Append(session.WidgetAssistant, reply)
		return nil
	})
	if err != nil {
		return SendResult{}, fmt.Errorf("append assistant reply: %w", err)
	}
	if stale {
		s.metrics.IncChatReply(string(session.WidgetAssistant), "stale")
		s.log.Debug("discarding superseded assistant reply", "session_id", sessionID, "request", reqID)
		return SendResult{Sent: true, State: st}, nil
	}
	s.metrics.IncChatReply(string(session.WidgetAssistant), "reply")
	return SendResult{Sent: true, Reply: &reply, State: st}, nil
}
