// Package behavior analyzes per-user message history for signals a single
// message cannot show: floods of repeated content, invisible-character
// smuggling and claims of prior agreements that never happened.
package behavior

import (
	"strings"
	"sync"
	"time"

	"github.com/promptward/promptward/pkg/patterns"
)

// Finding is one behavioral signal with its own severity tier.
type Finding struct {
	Check    string
	Severity patterns.Severity
	Detail   string
}

const (
	// minLineLength filters trivial lines out of the repetition check so
	// bullet lists and short affirmations do not trip it.
	minLineLength = 20

	// repeatedMessageThreshold is how many identical messages inside the
	// retention window mark a replay flood.
	repeatedMessageThreshold = 3

	// maxCharRun is the longest run of one character tolerated before the
	// message counts as token-flood padding.
	maxCharRun = 50
)

type entry struct {
	text string
	at   time.Time
}

type userHistory struct {
	entries []entry
}

// Analyzer keeps a bounded FIFO window of recent messages per user.
// Entries age out after ttl; a background sweep drops idle users.
type Analyzer struct {
	capacity int
	ttl      time.Duration

	mu    sync.RWMutex
	users map[string]*userHistory

	now      func() time.Time
	stopOnce sync.Once
	stop     chan struct{}
}

// NewAnalyzer builds an analyzer retaining up to capacity messages per
// user for ttl.
func NewAnalyzer(capacity int, ttl time.Duration) *Analyzer {
	a := &Analyzer{
		capacity: capacity,
		ttl:      ttl,
		users:    make(map[string]*userHistory),
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go a.sweep()
	return a
}

// Analyze inspects one canonical message in the context of the user's
// stored window and records it afterwards. claimsPrior marks messages the
// pattern layer flagged as referencing earlier agreements; the analyzer
// checks that claim against what the window actually holds.
func (a *Analyzer) Analyze(userID, canonical string, invisibleCount int, claimsPrior bool) []Finding {
	var findings []Finding

	if f, ok := checkLineRepetition(canonical); ok {
		findings = append(findings, f)
	}
	if f, ok := checkCharRun(canonical); ok {
		findings = append(findings, f)
	}
	if invisibleCount > 0 {
		findings = append(findings, Finding{
			Check:    "invisible_characters",
			Severity: patterns.SeverityHigh,
			Detail:   "message carries invisible characters",
		})
	}

	history := a.window(userID)

	if claimsPrior && len(history) == 0 {
		findings = append(findings, Finding{
			Check:    "unsupported_prior_claim",
			Severity: patterns.SeverityMedium,
			Detail:   "references an earlier exchange but no history exists for this user",
		})
	}

	repeats := 1
	for _, e := range history {
		if e.text == canonical {
			repeats++
		}
	}
	if repeats >= repeatedMessageThreshold {
		findings = append(findings, Finding{
			Check:    "repeated_message",
			Severity: patterns.SeverityHigh,
			Detail:   "identical message replayed within the retention window",
		})
	}

	a.record(userID, canonical)
	return findings
}

// HistoryLen reports how many entries are currently retained for a user.
func (a *Analyzer) HistoryLen(userID string) int {
	return len(a.window(userID))
}

// Close stops the background sweep.
func (a *Analyzer) Close() error {
	a.stopOnce.Do(func() { close(a.stop) })
	return nil
}

func (a *Analyzer) window(userID string) []entry {
	cutoff := a.now().Add(-a.ttl)

	a.mu.RLock()
	h := a.users[userID]
	a.mu.RUnlock()
	if h == nil {
		return nil
	}

	live := make([]entry, 0, len(h.entries))
	a.mu.RLock()
	for _, e := range h.entries {
		if e.at.After(cutoff) {
			live = append(live, e)
		}
	}
	a.mu.RUnlock()
	return live
}

func (a *Analyzer) record(userID, canonical string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	h := a.users[userID]
	if h == nil {
		h = &userHistory{}
		a.users[userID] = h
	}
	h.entries = append(h.entries, entry{text: canonical, at: a.now()})
	if len(h.entries) > a.capacity {
		h.entries = h.entries[len(h.entries)-a.capacity:]
	}
}

func (a *Analyzer) sweep() {
	ticker := time.NewTicker(a.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-a.stop:
			return
		case <-ticker.C:
			a.evictExpired()
		}
	}
}

func (a *Analyzer) evictExpired() {
	cutoff := a.now().Add(-a.ttl)
	a.mu.Lock()
	defer a.mu.Unlock()
	for user, h := range a.users {
		live := h.entries[:0]
		for _, e := range h.entries {
			if e.at.After(cutoff) {
				live = append(live, e)
			}
		}
		if len(live) == 0 {
			delete(a.users, user)
			continue
		}
		h.entries = live
	}
}

// checkLineRepetition flags messages where most substantial lines are
// duplicates, the shape of copy-paste flood attacks.
func checkLineRepetition(text string) (Finding, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) <= 3 {
		return Finding{}, false
	}
	unique := make(map[string]struct{})
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > minLineLength {
			unique[trimmed] = struct{}{}
		}
	}
	if len(unique) > 0 && len(lines) > len(unique)*2 {
		return Finding{
			Check:    "repetition_flood",
			Severity: patterns.SeverityHigh,
			Detail:   "over half of the message lines are duplicates",
		}, true
	}
	return Finding{}, false
}

// checkCharRun flags degenerate padding such as thousands of repeated
// characters used to push instructions out of a context window.
func checkCharRun(text string) (Finding, bool) {
	var last rune
	run := 0
	for _, r := range text {
		if r == last && r != ' ' && r != '\n' {
			run++
			if run >= maxCharRun {
				return Finding{
					Check:    "character_run",
					Severity: patterns.SeverityHigh,
					Detail:   "long run of a single repeated character",
				}, true
			}
			continue
		}
		last = r
		run = 1
	}
	return Finding{}, false
}
