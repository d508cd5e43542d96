package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"

	"github.com/yungbote/learnhub/internal/platform/logger"
)

const (
	// FallbackReply is shown when the endpoint answers without a response.
	FallbackReply = "Sorry, I could not understand that."
	// UnavailableReply is shown for any failed exchange.
	UnavailableReply = "Sorry, Gemini AI is not available right now."
)

// Client posts one message to the assistant endpoint and returns its answer.
type Client interface {
	Chat(ctx context.Context, message string) (string, error)
}

type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("assistant http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("assistant http error: status=%d body=%s", e.StatusCode, e.Body)
}

type client struct {
	log        *logger.Logger
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(log *logger.Logger, endpoint string, timeout time.Duration) (Client, error) {
	return NewClientWithHTTPClient(log, endpoint, timeout, &http.Client{})
}

// NewClientWithHTTPClient lets tests swap the transport.
func NewClientWithHTTPClient(log *logger.Logger, endpoint string, timeout time.Duration, httpClient *http.Client) (Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("assistant endpoint required")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &client{
		log:        log.With("client", "AssistantClient"),
		endpoint:   endpoint,
		timeout:    timeout,
		httpClient: httpClient,
	}, nil
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat performs exactly one request. A 2xx JSON answer without a response
// yields FallbackReply; every other outcome is an error.
func (c *client) Chat(ctx context.Context, message string) (string, error) {
	ctx, span := otel.Tracer("learnhub/assistant").Start(ctx, "assistant.chat")
	defer span.End()
	span.SetAttributes(attribute.String("http.url", c.endpoint))

	out, err := c.do(ctx, message)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Warn("assistant request failed", "error", err)
		return "", err
	}
	if strings.TrimSpace(out.Response) == "" {
		return FallbackReply, nil
	}
	return out.Response, nil
}

func (c *client) do(ctx context.Context, message string) (chatResponse, error) {
	var out chatResponse

	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return out, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return out, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode assistant response: %w", err)
	}
	return out, nil
}
