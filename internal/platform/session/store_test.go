package session

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestStore_LazyInitAndIsolation(t *testing.T) {
	calls := 0
	s := NewStore(time.Minute, func() []int {
		calls++
		return []int{1, 2, 3}
	})

	a := s.Update("a", func(cur []int) []int { return append([]int(nil), cur[1:]...) })
	b := s.Get("b")

	if len(a) != 2 || len(b) != 3 {
		t.Errorf("sessions share state: a=%v b=%v", a, b)
	}
	if calls != 2 {
		t.Errorf("expected one init per session, got %d", calls)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", s.Len())
	}
}

func TestStore_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	s := NewStore(10*time.Minute, func() int { return 0 })
	s.now = func() time.Time { return now }

	s.Get("old")
	now = now.Add(6 * time.Minute)
	s.Get("new")
	now = now.Add(6 * time.Minute)

	if removed := s.Sweep(); removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 live session, got %d", s.Len())
	}
}

func TestStore_SweepWithoutTTL(t *testing.T) {
	s := NewStore(0, func() int { return 0 })
	s.Get("a")
	s.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
	if removed := s.Sweep(); removed != 0 {
		t.Errorf("expected nothing removed, got %d", removed)
	}
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	s := NewStore(0, func() int { return 0 })
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update("a", func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()
	if got := s.Get("a"); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	s := NewStore(time.Minute, func() int { return 0 })
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
