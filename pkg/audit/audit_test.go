package audit

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type captureSink struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
}

func (s *captureSink) Name() string { return "capture" }

func (s *captureSink) Deliver(_ context.Context, event Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *captureSink) Close() error { return nil }

func (s *captureSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestNewEventStamped(t *testing.T) {
	e := NewEvent()
	if e.ID == "" {
		t.Error("event should carry an id")
	}
	if e.Timestamp.IsZero() {
		t.Error("event should carry a timestamp")
	}
}

func TestEmitterDelivers(t *testing.T) {
	sink := &captureSink{}
	emitter := NewEmitter(sink)

	for i := 0; i < 10; i++ {
		ev := NewEvent()
		ev.UserID = "u1"
		ev.Severity = "HIGH"
		ev.Action = "block"
		emitter.Emit(ev)
	}
	emitter.Close()

	if got := sink.count(); got != 10 {
		t.Errorf("delivered %d events, want 10", got)
	}
	if emitter.Dropped() != 0 {
		t.Errorf("dropped = %d, want 0", emitter.Dropped())
	}
}

func TestEmitterDropsNotBlocks(t *testing.T) {
	sink := &captureSink{block: make(chan struct{})}
	emitter := NewEmitter(sink)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Far more events than queue capacity while the sink is stuck.
		for i := 0; i < defaultQueueSize*4; i++ {
			emitter.Emit(NewEvent())
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked on a stuck sink")
	}

	if emitter.Dropped() == 0 {
		t.Error("expected drops under overload")
	}

	close(sink.block)
	emitter.Close()
}

func TestEmitterNoSinks(t *testing.T) {
	emitter := NewEmitter()
	emitter.Emit(NewEvent())
	emitter.Close()
}

func TestFileSinkWritesJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events", "guard.jsonl")
	sink, err := NewFileSink(path)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		ev := NewEvent()
		ev.UserID = "u1"
		ev.Severity = "CRITICAL"
		ev.Action = "block_notify"
		ev.Categories = []string{"critical_commands"}
		if err := sink.Deliver(context.Background(), ev); err != nil {
			t.Fatal(err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines, err)
		}
		if ev.Severity != "CRITICAL" {
			t.Errorf("severity = %q", ev.Severity)
		}
	}
	if lines != 3 {
		t.Errorf("wrote %d lines, want 3", lines)
	}
}

func TestWebhookSinkNotifyOnly(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		var ev Event
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := NewWebhookSink(server.URL)

	warn := NewEvent()
	warn.Action = "warn"
	if err := sink.Deliver(context.Background(), warn); err != nil {
		t.Fatal(err)
	}

	notify := NewEvent()
	notify.Action = "block_notify"
	if err := sink.Deliver(context.Background(), notify); err != nil {
		t.Fatal(err)
	}

	if hits.Load() != 1 {
		t.Errorf("webhook hit %d times, want 1 (block_notify only)", hits.Load())
	}
}

func TestIntelSinkReportsBlockedOnly(t *testing.T) {
	var hits atomic.Int64
	var last intelReport
	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		mu.Lock()
		defer mu.Unlock()
		if err := json.NewDecoder(r.Body).Decode(&last); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := NewIntelSink(server.URL)

	warn := NewEvent()
	warn.Action = "warn"
	warn.Patterns = []string{"context_hijacking/we_discussed"}
	if err := sink.Deliver(context.Background(), warn); err != nil {
		t.Fatal(err)
	}

	block := NewEvent()
	block.Action = "block"
	block.Severity = "HIGH"
	block.Categories = []string{"instruction_override_en"}
	block.Patterns = []string{"instruction_override_en/ignore_previous"}
	block.Fingerprint = "abc123def456"
	if err := sink.Deliver(context.Background(), block); err != nil {
		t.Fatal(err)
	}

	if hits.Load() != 1 {
		t.Fatalf("intel endpoint hit %d times, want 1 (blocked verdicts only)", hits.Load())
	}

	mu.Lock()
	defer mu.Unlock()
	if len(last.PatternHashes) != 1 {
		t.Fatalf("pattern hashes = %v, want 1 entry", last.PatternHashes)
	}
	if want := HashPattern("instruction_override_en/ignore_previous"); last.PatternHashes[0] != want {
		t.Errorf("hash = %q, want %q", last.PatternHashes[0], want)
	}
	if last.Severity != "HIGH" || last.Fingerprint != "abc123def456" {
		t.Errorf("report = %+v", last)
	}
}

func TestHashPattern(t *testing.T) {
	h := HashPattern("guardrail_bypass/ignore_prompt")
	if !strings.HasPrefix(h, "sha256:") {
		t.Errorf("hash %q should carry the algorithm prefix", h)
	}
	if len(h) != len("sha256:")+16 {
		t.Errorf("hash %q should truncate to 16 hex chars", h)
	}
	if h != HashPattern("guardrail_bypass/ignore_prompt") {
		t.Error("hash must be deterministic")
	}
	if h == HashPattern("guardrail_bypass/forget_prompt") {
		t.Error("different rules must hash differently")
	}
}

func TestWebhookSinkErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	sink := NewWebhookSink(server.URL)
	ev := NewEvent()
	ev.Action = "block_notify"
	if err := sink.Deliver(context.Background(), ev); err == nil {
		t.Error("expected error for non-2xx response")
	}
}
