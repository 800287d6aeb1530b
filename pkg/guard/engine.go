package guard

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/promptward/promptward/pkg/audit"
	"github.com/promptward/promptward/pkg/behavior"
	"github.com/promptward/promptward/pkg/config"
	"github.com/promptward/promptward/pkg/decode"
	"github.com/promptward/promptward/pkg/normalize"
	"github.com/promptward/promptward/pkg/patterns"
	"github.com/promptward/promptward/pkg/ratelimit"
	"github.com/promptward/promptward/pkg/telemetry"
)

// snapshot is the immutable view of policy one evaluation runs against.
// Hot reload builds a fresh snapshot and swaps the pointer; an in-flight
// evaluation keeps the one it started with.
type snapshot struct {
	cfg         *config.Config
	sensitivity Sensitivity
	actions     map[Severity]Action
	registry    *patterns.Registry
	probe       *decode.Probe
}

// Engine runs the full evaluation pipeline: rate limiting, normalization,
// pattern scanning, encoding probing, behavioral analysis and the final
// decision. Safe for concurrent use.
type Engine struct {
	snap     atomic.Pointer[snapshot]
	limiter  ratelimit.Limiter
	analyzer *behavior.Analyzer
	emitter  *audit.Emitter
	metrics  *telemetry.Metrics

	// seenDropped mirrors the emitter's drop counter so metrics record
	// only the delta since the last evaluation.
	seenDropped atomic.Uint64
}

// Option adjusts engine construction, mostly for tests and the serve
// command.
type Option func(*Engine)

// WithLimiter overrides the limiter built from configuration.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(e *Engine) { e.limiter = l }
}

// WithEmitter overrides the audit emitter built from configuration.
func WithEmitter(em *audit.Emitter) Option {
	return func(e *Engine) { e.emitter = em }
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New builds an engine from a validated configuration.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	snap, err := buildSnapshot(cfg)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		analyzer: behavior.NewAnalyzer(cfg.History.Capacity, cfg.History.TTL()),
	}
	e.snap.Store(snap)

	for _, opt := range opts {
		opt(e)
	}

	if e.limiter == nil {
		e.limiter = buildLimiter(cfg)
	}
	if e.emitter == nil {
		em, err := buildEmitter(cfg)
		if err != nil {
			e.analyzer.Close()
			return nil, err
		}
		e.emitter = em
	}
	return e, nil
}

// Reload validates cfg, builds a fresh snapshot and publishes it
// atomically. In-flight evaluations finish on the old snapshot; the
// limiter, history and audit pipeline carry their state across reloads.
func (e *Engine) Reload(cfg *config.Config) error {
	snap, err := buildSnapshot(cfg)
	if err != nil {
		return err
	}
	e.snap.Store(snap)
	return nil
}

// Close releases background resources. The engine must not be used after.
func (e *Engine) Close() error {
	err := e.limiter.Close()
	e.analyzer.Close()
	e.emitter.Close()
	return err
}

func buildSnapshot(cfg *config.Config) (*snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sensitivity, err := ParseSensitivity(cfg.Sensitivity)
	if err != nil {
		return nil, err
	}

	actions := map[Severity]Action{
		SeverityLow:      ActionLog,
		SeverityMedium:   ActionWarn,
		SeverityHigh:     ActionBlock,
		SeverityCritical: ActionBlockNotify,
	}
	for key, name := range cfg.Actions {
		sev, err := ParseSeverity(key)
		if err != nil {
			return nil, err
		}
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		actions[sev] = action
	}

	registry := patterns.Load()
	return &snapshot{
		cfg:         cfg,
		sensitivity: sensitivity,
		actions:     actions,
		registry:    registry,
		probe:       decode.New(registry),
	}, nil
}

func buildLimiter(cfg *config.Config) ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return ratelimit.Disabled{}
	}
	if cfg.Redis.Enabled {
		return ratelimit.NewRedis(cfg.Redis.Addr, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())
	}
	return ratelimit.NewMemory(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())
}

func buildEmitter(cfg *config.Config) (*audit.Emitter, error) {
	var sinks []audit.Sink
	if cfg.Logging.Enabled {
		fs, err := audit.NewFileSink(cfg.Logging.Path)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fs)
	}
	if cfg.Postgres.Enabled {
		ps, err := audit.NewPostgresSink(context.Background(), cfg.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("audit postgres sink: %w", err)
		}
		sinks = append(sinks, ps)
	}
	if cfg.Webhook.Enabled {
		sinks = append(sinks, audit.NewWebhookSink(cfg.Webhook.URL))
	}
	if cfg.Intel.Enabled {
		sinks = append(sinks, audit.NewIntelSink(cfg.Intel.URL))
	}
	return audit.NewEmitter(sinks...), nil
}

// Evaluate classifies one message. It always returns a verdict; every
// internal failure degrades toward the safer outcome.
func (e *Engine) Evaluate(ctx context.Context, text string, mctx Context) *DetectionResult {
	started := time.Now()
	snap := e.snap.Load()

	result := e.evaluate(ctx, snap, text, mctx)

	e.audit(result, mctx)
	if e.metrics != nil {
		e.metrics.ObserveEvaluation(string(result.Action), time.Since(started))
		if result.RateLimited {
			e.metrics.RateLimited.Inc()
		}
		if dropped := e.emitter.Dropped(); dropped > 0 {
			prev := e.seenDropped.Swap(dropped)
			if dropped > prev {
				e.metrics.AuditDropped.Add(float64(dropped - prev))
			}
		}
	}
	return result
}

func (e *Engine) evaluate(ctx context.Context, snap *snapshot, text string, mctx Context) *DetectionResult {
	isOwner := mctx.IsOwner || snap.cfg.IsOwner(mctx.UserID)

	// A store failure counts as exceeded: an unreachable limiter must not
	// open the gate.
	allowed, err := e.limiter.Allow(ctx, mctx.UserID)
	if err != nil || !allowed {
		return rateLimitedResult(mctx)
	}

	norm := normalize.Normalize(text)

	matches, terminal := snap.registry.Scan(text, norm.Canonical)
	findings, recommendations := convertMatches(matches, LayerPattern)

	if norm.HomoglyphCount > 0 {
		findings = append(findings, Finding{
			Category: "homoglyph_substitution",
			Pattern:  "normalizer",
			Severity: SeverityMedium,
			Layer:    LayerPattern,
		})
		recommendations = append(recommendations, "Message contains disguised characters")
	}

	if terminal {
		// Terminal tier condemned the message outright; the remaining
		// layers cannot change the verdict.
		return decide(snap, mctx, isOwner, decideInput{
			findings:        findings,
			recommendations: recommendations,
			canonical:       norm.Canonical,
			lowConfidence:   norm.LowConfidence,
		})
	}

	for _, pf := range snap.probe.Inspect(text) {
		encFindings, encRecs := convertMatches(pf.Matches, LayerEncoding)
		if len(encFindings) == 0 && len(pf.DangerWords) > 0 {
			encFindings = append(encFindings, Finding{
				Category: "encoded_payload",
				Pattern:  pf.Encoding,
				Severity: SeverityMedium,
				Layer:    LayerEncoding,
				Fragment: pf.Preview,
			})
		}
		findings = append(findings, encFindings...)
		recommendations = append(recommendations, encRecs...)
	}

	claimsPrior := hasAnyCategory(findings, "context_hijacking", "approval_expansion")
	for _, bf := range e.analyzer.Analyze(mctx.UserID, norm.Canonical, norm.InvisibleCount, claimsPrior) {
		findings = append(findings, Finding{
			Category: bf.Check,
			Pattern:  "behavior",
			Severity: Severity(int(bf.Severity)),
			Layer:    LayerBehavioral,
		})
	}

	return decide(snap, mctx, isOwner, decideInput{
		findings:        findings,
		recommendations: recommendations,
		canonical:       norm.Canonical,
		lowConfidence:   norm.LowConfidence,
	})
}

func (e *Engine) audit(result *DetectionResult, mctx Context) {
	event := audit.NewEvent()
	event.UserID = mctx.UserID
	event.ChatID = mctx.ChatID
	event.Severity = result.Severity.String()
	event.Action = string(result.Action)
	event.Categories = result.Reasons
	for _, f := range result.Findings {
		event.Patterns = append(event.Patterns, f.Category+"/"+f.Pattern)
	}
	event.RateLimited = result.RateLimited
	event.Fingerprint = result.Fingerprint
	e.emitter.Emit(event)
}

func convertMatches(matches []patterns.Match, layer Layer) ([]Finding, []string) {
	var findings []Finding
	var recs []string
	seenRec := map[string]bool{}
	for _, m := range matches {
		findings = append(findings, Finding{
			Category: m.Category,
			Pattern:  m.Pattern,
			Severity: Severity(int(m.Severity)),
			Layer:    layer,
			Fragment: m.Fragment,
		})
		if m.Recommendation != "" && !seenRec[m.Recommendation] {
			seenRec[m.Recommendation] = true
			recs = append(recs, m.Recommendation)
		}
	}
	return findings, recs
}

func hasAnyCategory(findings []Finding, categories ...string) bool {
	for _, f := range findings {
		for _, c := range categories {
			if f.Category == c {
				return true
			}
		}
	}
	return false
}
