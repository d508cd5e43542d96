package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/domain/chat"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

func TestMemoryStoreDefaultsAndUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(logger.Nop(), time.Hour)

	st, err := s.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if st.Level != catalog.LevelPrimary || st.Subject != "" || len(st.Tutor) != 0 {
		t.Fatalf("unexpected fresh state: %+v", st)
	}

	_, err = s.Update(ctx, "abc", func(st *State) error {
		st.Level = catalog.LevelHigher
		st.Subject = "Physics"
		st.Append(WidgetTutor, chat.NewMessage(chat.RoleUser, "hi"))
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	st, _ = s.Get(ctx, "abc")
	if st.Level != catalog.LevelHigher || st.Subject != "Physics" || len(st.Tutor) != 1 {
		t.Fatalf("update not persisted: %+v", st)
	}

	// Returned states are copies.
	st.Tutor[0].Text = "mutated"
	again, _ := s.Get(ctx, "abc")
	if again.Tutor[0].Text != "hi" {
		t.Fatalf("store leaked internal slice")
	}
}

func TestMemoryStoreFailedUpdateWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(logger.Nop(), 0)
	boom := errors.New("boom")
	_, err := s.Update(ctx, "abc", func(st *State) error {
		st.Subject = "History"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
	st, _ := s.Get(ctx, "abc")
	if st.Subject != "" {
		t.Fatalf("failed update was written: %+v", st)
	}
}

func TestMemoryStoreRejectsEmptyID(t *testing.T) {
	s := NewMemoryStore(logger.Nop(), 0)
	if _, err := s.Get(context.Background(), ""); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err=%v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(logger.Nop(), time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_, _ = s.Update(ctx, "old", func(st *State) error { st.Subject = "History"; return nil })
	now = now.Add(2 * time.Minute)

	st, _ := s.Get(ctx, "old")
	if st.Subject != "" {
		t.Fatalf("expired session still served: %+v", st)
	}
	if n := s.Sweep(); n != 1 {
		t.Fatalf("swept=%d", n)
	}
}

func TestMemoryStoreSerializesUpdates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(logger.Nop(), 0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(ctx, "abc", func(st *State) error {
				st.NextRequest(WidgetTutor)
				return nil
			})
		}()
	}
	wg.Wait()
	st, _ := s.Get(ctx, "abc")
	if st.TutorRequest != 50 {
		t.Fatalf("lost updates: %d", st.TutorRequest)
	}
}

func TestRunJanitorStopsOnCancel(t *testing.T) {
	s := NewMemoryStore(logger.Nop(), time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunJanitor(ctx, time.Millisecond) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("janitor err=%v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("janitor did not stop")
	}
}
