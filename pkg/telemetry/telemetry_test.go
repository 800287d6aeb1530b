package telemetry

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsIsolatedRegistries(t *testing.T) {
	// Two instances must not collide; each carries its own registry.
	m1 := New()
	m2 := New()
	m1.ObserveEvaluation("allow", time.Millisecond)
	m2.ObserveEvaluation("block", time.Millisecond)
}

func TestHandlerExposesSeries(t *testing.T) {
	m := New()
	m.ObserveEvaluation("block", 2*time.Millisecond)
	m.RateLimited.Inc()
	m.AuditDropped.Add(3)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	out := string(body)

	for _, series := range []string{
		`promptward_evaluations_total{action="block"} 1`,
		"promptward_rate_limited_total 1",
		"promptward_audit_dropped_total 3",
		"promptward_evaluation_duration_seconds_count 1",
	} {
		if !strings.Contains(out, series) {
			t.Errorf("exposition missing %q", series)
		}
	}
}
