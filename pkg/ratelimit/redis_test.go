package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newRedisLimiter(t *testing.T, maxRequests int) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	l := NewRedis(srv.Addr(), maxRequests, time.Minute)
	t.Cleanup(func() { l.Close() })
	return l, srv
}

func TestRedisAllowUnderLimit(t *testing.T) {
	l, _ := newRedisLimiter(t, 3)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "u1")
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	ok, err := l.Allow(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("fourth request should be denied")
	}
}

func TestRedisUsersIndependent(t *testing.T) {
	l, _ := newRedisLimiter(t, 1)

	ctx := context.Background()
	l.Allow(ctx, "u1")
	if ok, _ := l.Allow(ctx, "u2"); !ok {
		t.Error("u2 should not share u1's window")
	}
}

func TestRedisFailClosed(t *testing.T) {
	l, srv := newRedisLimiter(t, 10)
	srv.Close()

	ok, err := l.Allow(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected store error after server shutdown")
	}
	if ok {
		t.Error("store failure must never report allowed")
	}
}
