package session

import (
	"context"
	"sync"
	"time"

	"github.com/yungbote/learnhub/internal/platform/logger"
)

type MemoryStore struct {
	log *logger.Logger
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]State
}

func NewMemoryStore(log *logger.Logger, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		log:      log.With("service", "MemorySessionStore"),
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
		sessions: make(map[string]State),
	}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (State, error) {
	if id == "" {
		return State{}, ErrNoSession
	}
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[id]
	if !ok || m.expired(st) {
		return New(id), nil
	}
	return st.clone(), nil
}

func (m *MemoryStore) Update(ctx context.Context, id string, fn func(*State) error) (State, error) {
	if id == "" {
		return State{}, ErrNoSession
	}
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[id]
	if !ok || m.expired(st) {
		st = New(id)
	} else {
		st = st.clone()
	}
	if err := fn(&st); err != nil {
		return State{}, err
	}
	st.UpdatedAt = m.now()
	m.sessions[id] = st
	return st.clone(), nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) expired(st State) bool {
	return m.ttl > 0 && m.now().Sub(st.UpdatedAt) > m.ttl
}

// Sweep drops expired sessions and reports how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, st := range m.sessions {
		if m.expired(st) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// RunJanitor sweeps every interval until ctx is done.
func (m *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.log.Debug("Expired sessions swept", "count", n)
			}
		}
	}
}
