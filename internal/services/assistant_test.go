package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yungbote/learnhub/internal/clients/assistant"
	"github.com/yungbote/learnhub/internal/domain/chat"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

type fakeAssistant struct {
	reply string
	err   error
	calls []string
}

func (f *fakeAssistant) Chat(_ context.Context, message string) (string, error) {
	f.calls = append(f.calls, message)
	return f.reply, f.err
}

func TestSendAIMessageShowsResponse(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"Hi there"}`))
	}))
	defer srv.Close()
	client, err := assistant.NewClient(logger.Nop(), srv.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	svc := NewAssistantService(logger.Nop(), client, f.sessions, nil)

	res, err := svc.SendAIMessage(context.Background(), "s1", " hello ")
	if err != nil {
		t.Fatalf("SendAIMessage: %v", err)
	}
	if res.Reply == nil || res.Reply.Text != "Hi there" {
		t.Fatalf("reply=%+v", res.Reply)
	}
	tr, _ := svc.Transcript(context.Background(), "s1")
	if len(tr) != 2 || tr[0].Text != "hello" || tr[0].Role != chat.RoleUser || tr[1].Text != "Hi there" {
		t.Fatalf("transcript=%+v", tr)
	}
}

func TestSendAIMessageApologizesOnFailure(t *testing.T) {
	f := newFixture(t)
	fake := &fakeAssistant{err: errors.New("connection refused")}
	svc := NewAssistantService(logger.Nop(), fake, f.sessions, nil)

	res, err := svc.SendAIMessage(context.Background(), "s1", "hello")
	if err != nil {
		t.Fatalf("SendAIMessage: %v", err)
	}
	if res.Reply == nil || res.Reply.Text != "Sorry, Gemini AI is not available right now." {
		t.Fatalf("reply=%+v", res.Reply)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("calls=%d, want exactly one", len(fake.calls))
	}
}

func TestSendAIMessageBlankIsNoop(t *testing.T) {
	f := newFixture(t)
	fake := &fakeAssistant{reply: "x"}
	svc := NewAssistantService(logger.Nop(), fake, f.sessions, nil)

	res, err := svc.SendAIMessage(context.Background(), "s1", "   ")
	if err != nil {
		t.Fatalf("SendAIMessage: %v", err)
	}
	if res.Sent || len(fake.calls) != 0 {
		t.Fatalf("blank input sent: %+v calls=%v", res, fake.calls)
	}
	tr, _ := svc.Transcript(context.Background(), "s1")
	if len(tr) != 0 {
		t.Fatalf("transcript=%+v", tr)
	}
}

func TestAssistantAndTutorTranscriptsAreIndependent(t *testing.T) {
	f := newFixture(t)
	svc := NewAssistantService(logger.Nop(), &fakeAssistant{reply: "ok"}, f.sessions, nil)
	tutor := NewTutorService(logger.Nop(), f.catalog, f.sessions, 0, nil)
	ctx := context.Background()

	if _, err := svc.SendAIMessage(ctx, "s1", "to assistant"); err != nil {
		t.Fatalf("SendAIMessage: %v", err)
	}
	if _, err := tutor.SendMessage(ctx, "s1", "to tutor"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	a, _ := svc.Transcript(ctx, "s1")
	tt, _ := tutor.Transcript(ctx, "s1")
	if len(a) != 2 || len(tt) != 2 || a[0].Text != "to assistant" || tt[0].Text != "to tutor" {
		t.Fatalf("assistant=%+v tutor=%+v", a, tt)
	}
}
