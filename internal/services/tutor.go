package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/learnhub/internal/domain/chat"
	"github.com/yungbote/learnhub/internal/observability"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/session"
)

const (
	htmlExplainer = "HTML stands for HyperText Markup Language. It is the standard markup language for creating web pages. " +
		"It describes the structure of a web page using elements, which are represented by tags like `<h1>`, `<p>`, `<img>`, etc."
	algebraExplainer = "Algebra is a branch of mathematics that substitutes letters for numbers. " +
		"An algebraic equation represents a scale where what is done on one side of the scale is also done to the other side. " +
		"For example, in x + 3 = 7, x would be 4."
)

// CannedReply picks the tutor's answer. Rules are checked in order against the
// lower-cased prompt: "lesson plan", then html for Web Development, then
// algebra for Mathematics, then a generic answer naming the subject.
// firstCourse is the subject's first course title, or empty when unknown.
func CannedReply(subject string, firstCourse string, prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "lesson plan"):
		if firstCourse == "" {
			firstCourse = "the first course"
		}
		return fmt.Sprintf("Of course! Here is a basic lesson plan for %s:\n"+
			"1. Start with the fundamentals (e.g., '%s').\n"+
			"2. Move to practical applications.\n"+
			"3. Finish with an advanced topic. What would you like to start with?", subject, firstCourse)
	case subject == "Web Development" && strings.Contains(p, "html"):
		return htmlExplainer
	case subject == "Mathematics" && strings.Contains(p, "algebra"):
		return algebraExplainer
	default:
		return fmt.Sprintf("That's a great question about %s. While I'm still a demo AI, a full version could explain that in detail. Try asking me for a \"lesson plan\".", subject)
	}
}

// SendResult reports what a send did. Sent is false for blank input. Reply is
// nil when the reply was superseded by a newer send and discarded.
type SendResult struct {
	Sent  bool          `json:"sent"`
	Reply *chat.Message `json:"reply,omitempty"`
	State session.State `json:"state"`
}

type TutorService interface {
	SendMessage(ctx context.Context, sessionID string, input string) (SendResult, error)
	Transcript(ctx context.Context, sessionID string) (chat.Transcript, error)
}

type tutorService struct {
	log      *logger.Logger
	catalog  CatalogService
	sessions session.Store
	delay    time.Duration
	metrics  *observability.Metrics
}

func NewTutorService(log *logger.Logger, catalog CatalogService, sessions session.Store, delay time.Duration, metrics *observability.Metrics) TutorService {
	return &tutorService{
		log:      log.With("service", "TutorService"),
		catalog:  catalog,
		sessions: sessions,
		delay:    delay,
		metrics:  metrics,
	}
}

func (s *tutorService) Transcript(ctx context.Context, sessionID string) (chat.Transcript, error) {
	st, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.Tutor, nil
}

// SendMessage appends the user message and a typing placeholder, waits the
// typing delay, then swaps the placeholder for one canned reply. The reply is
// dropped if another send started meanwhile.
func (s *tutorService) SendMessage(ctx context.Context, sessionID string, input string) (SendResult, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		st, err := s.sessions.Get(ctx, sessionID)
		return SendResult{State: st}, err
	}

	placeholder := chat.NewTypingPlaceholder()
	var (
		reqID   uint64
		subject string
	)
	if _, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.Append(session.WidgetTutor, chat.NewMessage(chat.RoleUser, text))
		st.Append(session.WidgetTutor, placeholder)
		reqID = st.NextRequest(session.WidgetTutor)
		subject = st.Subject
		return nil
	}); err != nil {
		return SendResult{}, fmt.Errorf("append tutor message: %w", err)
	}

	if err := s.wait(ctx); err != nil {
		s.dropPlaceholder(sessionID, placeholder.ID)
		return SendResult{}, err
	}

	first := ""
	if sub, ok, err := s.catalog.Lookup(ctx, subject); err != nil {
		s.log.Warn("subject lookup failed, replying without course", "subject", subject, "error", err)
	} else if ok {
		first, _ = sub.FirstCourse()
	}
	reply := chat.NewMessage(chat.RoleAssistant, CannedReply(subject, first, text))

	stale := false
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.Remove(session.WidgetTutor, placeholder.ID)
		if st.LatestRequest(session.WidgetTutor) != reqID {
			stale = true
			return nil
		}
		st.Append(session.WidgetTutor, reply)
		return nil
	})
	if err != nil {
		return SendResult{}, fmt.Errorf("append tutor reply: %w", err)
	}
	if stale {
		s.metrics.IncChatReply(string(session.WidgetTutor), "stale")
		s.log.Debug("discarding superseded tutor reply", "session_id", sessionID, "request", reqID)
		return SendResult{Sent: true, State: st}, nil
	}
	s.metrics.IncChatReply(string(session.WidgetTutor), "reply")
	return SendResult{Sent: true, Reply: &reply, State: st}, nil
}

func (s *tutorService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// dropPlaceholder runs after the caller's context is gone, so it uses its own.
func (s *tutorService) dropPlaceholder(sessionID string, placeholderID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.Remove(session.WidgetTutor, placeholderID)
		return nil
	}); err != nil {
		s.log.Warn("failed to remove typing placeholder", "session_id", sessionID, "error", err)
	}
}
