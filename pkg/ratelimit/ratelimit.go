// Package ratelimit enforces per-user sliding-window request limits for
// the detection pipeline. The window is consulted before any analysis
// runs; a store failure counts as exceeded, never as allowed.
package ratelimit

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

// Limiter answers whether one more evaluation is allowed for a user right
// now. A rejected request is not recorded: being refused must not push
// the user further over the limit.
type Limiter interface {
	// Allow reports whether the user is under the limit. A non-nil error
	// means the backing store failed; callers must treat that as denied.
	Allow(ctx context.Context, userID string) (bool, error)
	Close() error
}

// shardCount spreads per-user state across independent locks so hot users
// do not serialize unrelated traffic.
const shardCount = 16

type shard struct {
	mu      sync.Mutex
	windows map[string][]time.Time
}

// MemoryLimiter is the default single-process store. A background sweep
// evicts users whose whole window has expired.
type MemoryLimiter struct {
	maxRequests int
	window      time.Duration
	shards      [shardCount]*shard

	now      func() time.Time
	stopOnce sync.Once
	stop     chan struct{}
}

// NewMemory builds an in-memory limiter allowing maxRequests per window
// per user.
func NewMemory(maxRequests int, window time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		stop:        make(chan struct{}),
	}
	for i := range l.shards {
		l.shards[i] = &shard{windows: make(map[string][]time.Time)}
	}
	go l.sweep()
	return l
}

func (l *MemoryLimiter) shardFor(userID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return l.shards[h.Sum32()%shardCount]
}

// Allow implements Limiter. The in-memory store cannot fail, so the error
// is always nil.
func (l *MemoryLimiter) Allow(_ context.Context, userID string) (bool, error) {
	now := l.now()
	cutoff := now.Add(-l.window)

	s := l.shardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.windows[userID][:0]
	for _, t := range s.windows[userID] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.maxRequests {
		s.windows[userID] = kept
		return false, nil
	}

	s.windows[userID] = append(kept, now)
	return true, nil
}

// Close stops the background sweep.
func (l *MemoryLimiter) Close() error {
	l.stopOnce.Do(func() { close(l.stop) })
	return nil
}

func (l *MemoryLimiter) sweep() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.evictExpired()
		}
	}
}

func (l *MemoryLimiter) evictExpired() {
	cutoff := l.now().Add(-l.window)
	for _, s := range l.shards {
		s.mu.Lock()
		for user, times := range s.windows {
			live := false
			for _, t := range times {
				if t.After(cutoff) {
					live = true
					break
				}
			}
			if !live {
				delete(s.windows, user)
			}
		}
		s.mu.Unlock()
	}
}

// Disabled is a Limiter that always allows; used when rate limiting is
// turned off in configuration.
type Disabled struct{}

func (Disabled) Allow(context.Context, string) (bool, error) { return true, nil }
func (Disabled) Close() error                                { return nil }
