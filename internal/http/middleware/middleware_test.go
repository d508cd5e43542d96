package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/learnhub/internal/platform/ctxutil"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

func sessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(logger.Nop()), Session(SessionOptions{MaxAge: time.Hour}))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, ctxutil.SessionID(c.Request.Context()))
	})
	return r
}

func TestSessionIssuesCookie(t *testing.T) {
	r := sessionRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != DefaultSessionCookie {
		t.Fatalf("cookies=%v", cookies)
	}
	if _, err := uuid.Parse(cookies[0].Value); err != nil {
		t.Fatalf("cookie is not a uuid: %q", cookies[0].Value)
	}
	if rec.Body.String() != cookies[0].Value {
		t.Fatalf("context id=%q cookie=%q", rec.Body.String(), cookies[0].Value)
	}
	if !cookies[0].HttpOnly || cookies[0].MaxAge != 3600 {
		t.Fatalf("cookie=%+v", cookies[0])
	}
	if rec.Header().Get("X-Request-Id") == "" || rec.Header().Get("X-Trace-Id") == "" {
		t.Fatalf("trace headers missing: %v", rec.Header())
	}
}

func TestSessionKeepsExistingCookie(t *testing.T) {
	r := sessionRouter()
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: DefaultSessionCookie, Value: id})
	req.Header.Set("X-Request-Id", "req-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() != id {
		t.Fatalf("session id=%q want %q", rec.Body.String(), id)
	}
	if rec.Header().Get("X-Request-Id") != "req-1" {
		t.Fatalf("request id not echoed")
	}
}

func TestSessionReplacesMalformedCookie(t *testing.T) {
	r := sessionRouter()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: DefaultSessionCookie, Value: "not-a-uuid"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if _, err := uuid.Parse(rec.Body.String()); err != nil {
		t.Fatalf("expected fresh uuid, got %q", rec.Body.String())
	}
}
