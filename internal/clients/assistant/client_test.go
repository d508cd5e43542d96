package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, h http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(nil, srv.URL+"/api/gemini-chat", 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestChatReturnsResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/gemini-chat" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var in map[string]string
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
		}
		if in["message"] != "hello" {
			t.Errorf("message=%q", in["message"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"Hi there"}`))
	})

	got, err := c.Chat(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got != "Hi there" {
		t.Fatalf("got=%q", got)
	}
}

func TestChatFallsBackOnEmptyResponse(t *testing.T) {
	for _, body := range []string{`{}`, `{"response":""}`, `{"other":"x"}`} {
		body := body
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		got, err := c.Chat(context.Background(), "hello")
		if err != nil {
			t.Fatalf("%s: Chat: %v", body, err)
		}
		if got != FallbackReply {
			t.Fatalf("%s: got=%q", body, got)
		}
	}
}

func TestChatFailures(t *testing.T) {
	t.Run("non-2xx", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		_, err := c.Chat(context.Background(), "hello")
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("err=%v", err)
		}
	})
	t.Run("non-json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>oops</html>"))
		})
		if _, err := c.Chat(context.Background(), "hello"); err == nil {
			t.Fatalf("expected decode error")
		}
	})
	t.Run("network", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		c, err := NewClient(nil, url, time.Second)
		if err != nil {
			t.Fatalf("NewClient: %v", err)
		}
		if _, err := c.Chat(context.Background(), "hello"); err == nil {
			t.Fatalf("expected network error")
		}
	})
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	if _, err := NewClient(nil, "  ", 0); err == nil {
		t.Fatalf("expected error")
	}
}
