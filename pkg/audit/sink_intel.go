package audit

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/promptward/promptward/pkg/httputil"
)

// IntelSink reports blocked verdicts to a shared threat-intelligence
// endpoint so other deployments learn which rules are firing. Reports
// carry hashed rule ids and category tags only; the message itself never
// leaves the process. Reporting is one-way: the local corpus compiles at
// startup and is never extended from the network.
type IntelSink struct {
	url string
}

// NewIntelSink builds a sink reporting to url.
func NewIntelSink(url string) *IntelSink {
	return &IntelSink{url: url}
}

func (s *IntelSink) Name() string { return "intel" }

// intelReport is the outbound wire record for one blocked verdict.
type intelReport struct {
	PatternHashes []string `json:"pattern_hashes"`
	Categories    []string `json:"categories,omitempty"`
	Severity      string   `json:"severity"`
	Fingerprint   string   `json:"fingerprint"`
	RateLimited   bool     `json:"rate_limited,omitempty"`
}

func (s *IntelSink) Deliver(ctx context.Context, event Event) error {
	if event.Action != "block" && event.Action != "block_notify" {
		return nil
	}

	report := intelReport{
		PatternHashes: make([]string, 0, len(event.Patterns)),
		Categories:    event.Categories,
		Severity:      event.Severity,
		Fingerprint:   event.Fingerprint,
		RateLimited:   event.RateLimited,
	}
	for _, p := range event.Patterns {
		report.PatternHashes = append(report.PatternHashes, HashPattern(p))
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httputil.Client(httputil.TierMedium).Do(req)
	if err != nil {
		return err
	}
	defer httputil.DrainAndClose(resp.Body)

	if resp.StatusCode >= 300 {
		body, _ := httputil.ReadResponseBody(resp.Body, 512)
		return fmt.Errorf("intel status %d: %s", resp.StatusCode, body)
	}
	return nil
}

func (s *IntelSink) Close() error { return nil }

// HashPattern produces the short stable digest a rule id is reported
// under.
func HashPattern(pattern string) string {
	sum := sha256.Sum256([]byte(pattern))
	return "sha256:" + hex.EncodeToString(sum[:])[:16]
}
