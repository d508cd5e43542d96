package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMetricsWritePrometheus(t *testing.T) {
	m := NewMetrics()
	m.ObserveHTTP("GET", "/api/subjects", 200, 30*time.Millisecond)
	m.ObserveHTTP("GET", "/api/subjects", 200, 2*time.Second)
	m.ObserveEngine("offline", "offline", nil, time.Millisecond)
	m.ObserveEngine("remote", "oai_http", errors.New("boom"), time.Second)
	m.IncChatReply("assistant", "unavailable")
	m.InflightInc()

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# TYPE learnhub_http_requests_total counter",
		`learnhub_http_requests_total{method="GET",route="/api/subjects",status="200"} 2`,
		`learnhub_http_request_duration_seconds_bucket{method="GET",route="/api/subjects",le="0.05"} 1`,
		`learnhub_http_request_duration_seconds_bucket{method="GET",route="/api/subjects",le="+Inf"} 2`,
		`learnhub_http_request_duration_seconds_count{method="GET",route="/api/subjects"} 2`,
		"learnhub_http_inflight_requests 1",
		`learnhub_engine_requests_total{model="remote",engine="oai_http",status="error"} 1`,
		`learnhub_chat_replies_total{widget="assistant",outcome="unavailable"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	m.ObserveEngine("m", "e", nil, time.Millisecond)
	m.IncChatReply("tutor", "reply")
	m.InflightInc()
	m.InflightDec()
	if err := m.WritePrometheus(&bytes.Buffer{}); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
}

func TestLabelEscaping(t *testing.T) {
	got := labelString([]string{"route", "empty"}, []string{"a\"b\\c\nd"})
	if got != `{route="a\"b\\c\nd",empty="unknown"}` {
		t.Fatalf("got=%s", got)
	}
}

func TestParseRatio(t *testing.T) {
	cases := map[string]float64{"0.5": 0.5, "-1": 0, "7": 1}
	for in, want := range cases {
		got, ok := parseRatio(in)
		if !ok || got != want {
			t.Fatalf("parseRatio(%q)=%v,%v", in, got, ok)
		}
	}
	if _, ok := parseRatio("nope"); ok {
		t.Fatalf("expected parse failure")
	}
}
