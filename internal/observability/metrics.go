package observability

import (
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/yungbote/learnhub/internal/platform/envutil"
)

// Metrics is a small Prometheus text-format registry. A nil *Metrics is
// valid and records nothing, so callers never need to check.
type Metrics struct {
	apiRequests    *CounterVec
	apiLatency     *HistogramVec
	apiInflight    *Gauge
	engineRequests *CounterVec
	engineLatency  *HistogramVec
	chatReplies    *CounterVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Enabled reports METRICS_ENABLED.
func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

// Init returns the process-wide registry, or nil when metrics are disabled.
func Init() *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = NewMetrics()
	})
	return instance
}

func NewMetrics() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("learnhub_http_requests_total", "HTTP requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"learnhub_http_request_duration_seconds",
			"HTTP request latency in seconds by method/route.",
			[]string{"method", "route"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		),
		apiInflight:    NewGauge("learnhub_http_inflight_requests", "In-flight HTTP requests."),
		engineRequests: NewCounterVec("learnhub_engine_requests_total", "Chat engine calls by model/engine/status.", []string{"model", "engine", "status"}),
		engineLatency: NewHistogramVec(
			"learnhub_engine_request_duration_seconds",
			"Chat engine latency in seconds by model.",
			[]string{"model"},
			[]float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10, 30},
		),
		chatReplies: NewCounterVec("learnhub_chat_replies_total", "Chat widget outcomes by widget/outcome.", []string{"widget", "outcome"}),
	}
}

func (m *Metrics) ObserveHTTP(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unknown"
	}
	m.apiRequests.Inc(method, route, strconv.Itoa(status))
	m.apiLatency.Observe(dur.Seconds(), method, route)
}

func (m *Metrics) InflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) InflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveEngine(model, engine string, err error, dur time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.engineRequests.Inc(model, engine, status)
	m.engineLatency.Observe(dur.Seconds(), model)
}

// IncChatReply counts a widget outcome: "reply", "stale" or "unavailable".
func (m *Metrics) IncChatReply(widget, outcome string) {
	if m == nil {
		return
	}
	m.chatReplies.Inc(widget, outcome)
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, _ *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	for _, c := range []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.engineRequests, m.engineLatency, m.chatReplies,
	} {
		if err := c.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}
