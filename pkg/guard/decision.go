package guard

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// suspiciousWords are benign on their own but worth surfacing under
// paranoid sensitivity when nothing else fired.
var suspiciousWords = []string{"ignore", "forget", "pretend", "roleplay", "bypass", "override"}

type decideInput struct {
	findings        []Finding
	recommendations []string
	canonical       string
	lowConfidence   bool
}

// rateLimitedResult is the fixed verdict for a user over quota. The
// pipeline never ran, so the result carries no findings.
func rateLimitedResult(mctx Context) *DetectionResult {
	reasons := []string{"rate_limit_exceeded"}
	return &DetectionResult{
		Severity:        SeverityHigh,
		Action:          ActionBlock,
		Findings:        []Finding{},
		Reasons:         reasons,
		Recommendations: []string{"User may be attempting automated attacks"},
		RateLimited:     true,
		Fingerprint:     fingerprint(mctx.UserID, SeverityHigh, reasons),
	}
}

// decide aggregates layer findings into the final verdict. Severity is
// the maximum across findings, adjusted by the effective sensitivity,
// then mapped to an action.
func decide(snap *snapshot, mctx Context, isOwner bool, in decideInput) *DetectionResult {
	severity := SeveritySafe
	for _, f := range in.findings {
		if f.Severity > severity {
			severity = f.Severity
		}
	}

	sensitivity := snap.sensitivity
	if mctx.IsGroup && !isOwner {
		sensitivity = sensitivity.Bump()
	}

	findings := in.findings
	sortFindings(findings)
	reasons := categories(findings)
	recommendations := dedupe(in.recommendations)

	switch sensitivity {
	case SensitivityLow:
		if severity == SeverityLow {
			severity = SeveritySafe
		}
	case SensitivityHigh:
		if severity == SeverityLow {
			severity = SeverityMedium
		}
	case SensitivityParanoid:
		if severity == SeveritySafe && containsSuspiciousWord(in.canonical) {
			severity = SeverityLow
			reasons = append(reasons, "paranoid_flag")
		} else if severity >= SeverityMedium && severity < SeverityHigh {
			severity = SeverityHigh
		}
	}

	action := ActionAllow
	if severity > SeveritySafe {
		action = snap.actions[severity]
		// Owners keep an audit trail instead of being blocked, but a
		// critical hit is never waved through for anyone.
		if isOwner && severity < SeverityCritical {
			action = ActionLog
		}
	}

	if severity >= SeverityHigh {
		recommendations = append(recommendations, "Consider reviewing this user's recent activity")
	}

	var fp string
	if severity > SeveritySafe {
		fp = fingerprint(mctx.UserID, severity, reasons)
	}

	return &DetectionResult{
		Severity:        severity,
		Action:          action,
		Findings:        findings,
		Reasons:         reasons,
		Recommendations: recommendations,
		LowConfidence:   in.lowConfidence,
		Fingerprint:     fp,
	}
}

// sortFindings orders findings most severe first. Ties break by layer,
// pattern before encoding before behavioral, then by evaluation order.
func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Severity != findings[j].Severity {
			return findings[i].Severity > findings[j].Severity
		}
		return findings[i].Layer < findings[j].Layer
	})
}

// categories returns the distinct finding categories in finding order.
func categories(findings []Finding) []string {
	seen := make(map[string]bool, len(findings))
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, f.Category)
		}
	}
	return out
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func containsSuspiciousWord(canonical string) bool {
	lower := strings.ToLower(canonical)
	for _, w := range suspiciousWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// fingerprint is a short stable digest of who triggered what, used to
// correlate repeat offenders across audit events without storing the
// message itself.
func fingerprint(userID string, severity Severity, reasons []string) string {
	sorted := make([]string, len(reasons))
	copy(sorted, reasons)
	sort.Strings(sorted)

	h := sha256.New()
	h.Write([]byte(userID))
	h.Write([]byte{0})
	h.Write([]byte(severity.String()))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(sorted, ",")))
	return hex.EncodeToString(h.Sum(nil))[:12]
}
