package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryAllowUnderLimit(t *testing.T) {
	l := NewMemory(5, time.Minute)
	defer l.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "u1")
		if err != nil || !ok {
			t.Fatalf("request %d: ok=%v err=%v", i, ok, err)
		}
	}

	ok, _ := l.Allow(ctx, "u1")
	if ok {
		t.Error("sixth request should be denied")
	}
}

func TestMemoryRejectionNotCounted(t *testing.T) {
	base := time.Now()
	clock := base
	var mu sync.Mutex

	l := NewMemory(2, time.Minute)
	defer l.Close()
	l.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return clock
	}

	ctx := context.Background()
	l.Allow(ctx, "u1")
	l.Allow(ctx, "u1")

	// Hammering while denied must not extend the lockout.
	for i := 0; i < 10; i++ {
		if ok, _ := l.Allow(ctx, "u1"); ok {
			t.Fatal("should be denied while window is full")
		}
	}

	mu.Lock()
	clock = base.Add(61 * time.Second)
	mu.Unlock()

	if ok, _ := l.Allow(ctx, "u1"); !ok {
		t.Error("window expired; request should be allowed again")
	}
}

func TestMemoryWindowSlides(t *testing.T) {
	base := time.Now()
	clock := base

	l := NewMemory(2, time.Minute)
	defer l.Close()
	l.now = func() time.Time { return clock }

	ctx := context.Background()
	l.Allow(ctx, "u1")

	clock = base.Add(40 * time.Second)
	l.Allow(ctx, "u1")

	clock = base.Add(50 * time.Second)
	if ok, _ := l.Allow(ctx, "u1"); ok {
		t.Error("two requests inside window; third should be denied")
	}

	// First request ages out at +60s; capacity frees up.
	clock = base.Add(70 * time.Second)
	if ok, _ := l.Allow(ctx, "u1"); !ok {
		t.Error("oldest request expired; should be allowed")
	}
}

func TestMemoryUsersIndependent(t *testing.T) {
	l := NewMemory(1, time.Minute)
	defer l.Close()

	ctx := context.Background()
	l.Allow(ctx, "u1")

	if ok, _ := l.Allow(ctx, "u2"); !ok {
		t.Error("u2 should not be affected by u1's window")
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	l := NewMemory(1000, time.Minute)
	defer l.Close()

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			users := []string{"a", "b", "c", "d"}
			for j := 0; j < 100; j++ {
				l.Allow(ctx, users[(n+j)%len(users)])
			}
		}(i)
	}
	wg.Wait()
}

func TestDisabledAlwaysAllows(t *testing.T) {
	var l Limiter = Disabled{}
	for i := 0; i < 100; i++ {
		ok, err := l.Allow(context.Background(), "anyone")
		if !ok || err != nil {
			t.Fatalf("disabled limiter denied: ok=%v err=%v", ok, err)
		}
	}
}
