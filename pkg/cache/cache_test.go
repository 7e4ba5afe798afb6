package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestCacheSetPeek(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[string](Options{TTL: time.Minute, MaxEntries: 10, Clock: clock.Now}, MetricsHooks{})

	c.Set("alpha", "value", time.Minute)
	if val, ok := c.Peek("alpha"); !ok || val != "value" {
		t.Fatalf("expected peeked value")
	}

	clock.Advance(time.Minute)
	if _, ok := c.Peek("alpha"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestCacheGetHitMissExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	var hits, misses int
	c := New[int](Options{TTL: 3 * time.Second, Clock: clock.Now}, MetricsHooks{
		OnHit:  func(string) { hits++ },
		OnMiss: func(string) { misses++ },
	})

	calls := 0
	loader := func(_ context.Context, _ string) (int, error) {
		calls++
		return calls, nil
	}

	val, err := c.Get(context.Background(), "live", loader)
	if err != nil || val != 1 {
		t.Fatalf("expected first load, got %d (%v)", val, err)
	}

	clock.Advance(2 * time.Second)
	val, err = c.Get(context.Background(), "live", loader)
	if err != nil || val != 1 {
		t.Fatalf("expected cache hit, got %d (%v)", val, err)
	}

	clock.Advance(2 * time.Second)
	val, err = c.Get(context.Background(), "live", loader)
	if err != nil || val != 2 {
		t.Fatalf("expected reload after ttl, got %d (%v)", val, err)
	}

	if hits != 1 || misses != 2 {
		t.Fatalf("expected 1 hit and 2 misses, got %d/%d", hits, misses)
	}
}

func TestCacheDoesNotStoreErrors(t *testing.T) {
	c := New[int](Options{TTL: time.Minute}, MetricsHooks{})
	errBoom := errors.New("boom")

	calls := 0
	loader := func(_ context.Context, _ string) (int, error) {
		calls++
		return 0, errBoom
	}

	if _, err := c.Get(context.Background(), "k", loader); !errors.Is(err, errBoom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, err := c.Get(context.Background(), "k", loader); !errors.Is(err, errBoom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected loader to run on every failed get, ran %d times", calls)
	}
}

func TestCacheCollapsesConcurrentLoads(t *testing.T) {
	c := New[int](Options{TTL: time.Minute}, MetricsHooks{})

	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(_ context.Context, _ string) (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := c.Get(context.Background(), "k", loader); err != nil || v != 7 {
				t.Errorf("unexpected result %d (%v)", v, err)
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single load, got %d", got)
	}
}

func TestCacheEviction(t *testing.T) {
	c := New[string](Options{TTL: time.Minute, MaxEntries: 2}, MetricsHooks{})

	c.Set("first", "one", time.Minute)
	c.Set("second", "two", time.Minute)
	c.Set("third", "three", time.Minute)

	if _, ok := c.Peek("first"); ok {
		t.Fatalf("expected first entry to be evicted")
	}
	if _, ok := c.Peek("second"); !ok {
		t.Fatalf("expected second entry to remain")
	}
	if _, ok := c.Peek("third"); !ok {
		t.Fatalf("expected third entry to remain")
	}
}
