// Package decode probes messages for encoded payloads. Attackers wrap
// trigger phrases in base64, percent-encoding or HTML entities so the
// surface text looks harmless; the probe decodes candidates within a
// strict budget and re-feeds the plaintext to the pattern corpus.
package decode

import (
	"encoding/base64"
	"html"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/promptward/promptward/pkg/patterns"
)

const (
	// maxDepth bounds nested decoding (base64 inside base64). Two levels
	// catches every double-wrapped payload seen in the wild without
	// letting crafted input turn the probe into a decompression bomb.
	maxDepth = 2

	// maxAttempts caps decode operations per message across all layers.
	maxAttempts = 16

	// maxPreview bounds how much decoded plaintext a finding carries.
	maxPreview = 60

	// minBase64Run is the shortest candidate worth decoding; anything
	// shorter decodes to noise and floods the probe with false positives.
	minBase64Run = 20
)

// dangerWords flag a decoded payload as suspicious even when the corpus
// has no exact rule for its phrasing.
var dangerWords = []string{
	"delete", "execute", "ignore", "system", "admin",
	"rm ", "curl", "wget", "eval",
	"password", "token", "key",
}

var (
	base64Run  = regexp.MustCompile(`[A-Za-z0-9+/]{20,}={0,2}`)
	percentSeq = regexp.MustCompile(`%[0-9A-Fa-f]{2}`)
	htmlEntity = regexp.MustCompile(`&(#\d+|#x[0-9A-Fa-f]+|[a-zA-Z]+);`)
)

// Finding is one decoded payload that warranted attention: either the
// corpus matched inside it, or it contains danger words.
type Finding struct {
	Encoding    string
	Depth       int
	Preview     string
	DangerWords []string
	Matches     []patterns.Match
}

// Probe re-scans decoded payloads against a shared registry. Stateless
// and safe for concurrent use.
type Probe struct {
	registry *patterns.Registry
}

// New returns a probe bound to the given corpus.
func New(registry *patterns.Registry) *Probe {
	return &Probe{registry: registry}
}

// Inspect walks the message for encoded payloads and returns findings for
// every decoded form that matched the corpus or contained danger words.
// Failed decodes are skipped silently; a payload that will not decode
// cannot smuggle instructions.
func (p *Probe) Inspect(text string) []Finding {
	budget := maxAttempts
	return p.inspect(text, 1, &budget)
}

func (p *Probe) inspect(text string, depth int, budget *int) []Finding {
	if depth > maxDepth || *budget <= 0 {
		return nil
	}

	var findings []Finding

	for _, run := range base64Run.FindAllString(text, -1) {
		if *budget <= 0 {
			break
		}
		if len(run) < minBase64Run {
			continue
		}
		*budget--
		decoded, ok := decodeBase64(run)
		if !ok {
			continue
		}
		findings = append(findings, p.assess("base64", depth, decoded)...)
		findings = append(findings, p.inspect(decoded, depth+1, budget)...)
	}

	if percentSeq.MatchString(text) && *budget > 0 {
		*budget--
		if decoded, err := url.PathUnescape(text); err == nil && decoded != text {
			findings = append(findings, p.assess("percent", depth, decoded)...)
			findings = append(findings, p.inspect(decoded, depth+1, budget)...)
		}
	}

	if htmlEntity.MatchString(text) && *budget > 0 {
		*budget--
		if decoded := html.UnescapeString(text); decoded != text {
			findings = append(findings, p.assess("htmlentity", depth, decoded)...)
			findings = append(findings, p.inspect(decoded, depth+1, budget)...)
		}
	}

	return findings
}

// assess decides whether a decoded payload is worth reporting.
func (p *Probe) assess(encoding string, depth int, decoded string) []Finding {
	matches := p.registry.ScanText(decoded)
	danger := containedDangerWords(decoded)
	if len(matches) == 0 && len(danger) == 0 {
		return nil
	}
	return []Finding{{
		Encoding:    encoding,
		Depth:       depth,
		Preview:     preview(decoded),
		DangerWords: danger,
		Matches:     matches,
	}}
}

func decodeBase64(run string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(run)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(run)
		if err != nil {
			return "", false
		}
	}
	decoded := string(raw)
	if !utf8.ValidString(decoded) || !mostlyPrintable(decoded) {
		return "", false
	}
	return decoded, true
}

// mostlyPrintable rejects binary blobs that happen to be valid UTF-8;
// decoded instructions are text.
func mostlyPrintable(s string) bool {
	if s == "" {
		return false
	}
	printable := 0
	total := 0
	for _, r := range s {
		total++
		if r == '\n' || r == '\t' || r == '\r' || (r >= 0x20 && r != 0x7f) {
			printable++
		}
	}
	return printable*10 >= total*9
}

func containedDangerWords(decoded string) []string {
	lower := strings.ToLower(decoded)
	var found []string
	for _, w := range dangerWords {
		if strings.Contains(lower, w) {
			found = append(found, w)
		}
	}
	return found
}

func preview(decoded string) string {
	decoded = strings.ReplaceAll(decoded, "\n", " ")
	if len(decoded) <= maxPreview {
		return decoded
	}
	// Cut on a rune boundary so CJK payloads stay valid UTF-8.
	cut := maxPreview
	for cut > 0 && !utf8.RuneStart(decoded[cut]) {
		cut--
	}
	return decoded[:cut] + "..."
}
