// Package audit records one event per evaluation and delivers it to
// configured sinks off the decision path. Delivery is best-effort: a slow
// or failing sink can drop events but can never block or fail a verdict.
package audit

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event is the audit record for one evaluated message. It carries the
// verdict and the matched category tags, never the message body or any
// matched secret payload.
type Event struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	UserID      string    `json:"user_id"`
	ChatID      string    `json:"chat_id,omitempty"`
	Severity    string    `json:"severity"`
	Action      string    `json:"action"`
	Categories  []string  `json:"categories,omitempty"`
	// Patterns are the matched rule ids (category/rule), never the rule
	// expressions or matched text.
	Patterns    []string `json:"patterns,omitempty"`
	RateLimited bool     `json:"rate_limited,omitempty"`
	Fingerprint string   `json:"fingerprint"`
}

// NewEvent stamps an event with identity and time.
func NewEvent() Event {
	return Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
}

// Sink delivers events to one destination.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event Event) error
	Close() error
}

const (
	defaultQueueSize = 256
	defaultWorkers   = 2
	deliverTimeout   = 5 * time.Second
)

// Emitter fans events out to sinks from a bounded queue. Emit never
// blocks; when the queue is full the event is counted as dropped.
type Emitter struct {
	sinks   []Sink
	queue   chan Event
	dropped atomic.Uint64

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewEmitter starts workers delivering to the given sinks. A nil or empty
// sink list yields an emitter that discards everything, which keeps
// callers free of nil checks.
func NewEmitter(sinks ...Sink) *Emitter {
	e := &Emitter{
		sinks: sinks,
		queue: make(chan Event, defaultQueueSize),
	}
	for i := 0; i < defaultWorkers; i++ {
		e.wg.Add(1)
		go e.worker()
	}
	return e
}

// Emit enqueues an event without blocking. Queue overflow drops the event
// and bumps the drop counter; the decision path never waits on audit.
func (e *Emitter) Emit(event Event) {
	select {
	case e.queue <- event:
	default:
		e.dropped.Add(1)
	}
}

// Dropped reports how many events were lost to queue overflow.
func (e *Emitter) Dropped() uint64 {
	return e.dropped.Load()
}

// Close drains the queue, waits for in-flight deliveries and closes all
// sinks. Safe to call more than once.
func (e *Emitter) Close() {
	e.stopOnce.Do(func() {
		close(e.queue)
		e.wg.Wait()
		for _, s := range e.sinks {
			if err := s.Close(); err != nil {
				log.Printf("[WARN] audit sink %s close: %v", s.Name(), err)
			}
		}
	})
}

func (e *Emitter) worker() {
	defer e.wg.Done()
	for event := range e.queue {
		for _, s := range e.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
			if err := s.Deliver(ctx, event); err != nil {
				log.Printf("[WARN] audit sink %s: %v", s.Name(), err)
			}
			cancel()
		}
	}
}
