package ctxutil

import (
	"context"
	"strings"
)

type sessionIDKey struct{}

func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, strings.TrimSpace(id))
}

// SessionID returns the browser session id attached by the session middleware,
// or "" outside a request.
func SessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return v
	}
	return ""
}
