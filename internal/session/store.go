package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned for an empty session id.
var ErrNoSession = errors.New("session id required")

// Store keeps session state for the lifetime of a page session. Get on an
// unknown id yields a fresh state without saving it. Update applies fn
// atomically per session and persists the result; if fn returns an error
// nothing is written.
type Store interface {
	Get(ctx context.Context, id string) (State, error)
	Update(ctx context.Context, id string, fn func(*State) error) (State, error)
	Delete(ctx context.Context, id string) error
}
