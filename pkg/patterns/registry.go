// Package patterns provides the compiled, categorized attack-pattern
// corpus for the detection engine. All regexes are compiled once at load
// and shared across evaluations.
//
// Design principles:
// - COMPILE ONCE: the corpus is compiled at load, not per-request
// - DATA-DRIVEN: a category is a declarative record, not a code branch;
//   adding a language or category is a data change
// - ORDERED: categories are evaluated in a fixed priority order, with the
//   short-circuit tier (immediate-danger commands, secret requests) first
package patterns

import (
	"regexp"
	"unicode/utf8"
)

// Severity mirrors the engine's ordered risk tiers. The registry stays
// dependency-free, so it carries its own ordinals; the engine converts.
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// LangAny marks a category whose rules are not scoped to one language.
const LangAny = "any"

// rule is one compiled pattern inside a category.
type rule struct {
	name string
	re   *regexp.Regexp
}

// Category is a named, severity-weighted group of rules. Rule lists are
// immutable after load.
type Category struct {
	ID             string
	Lang           string
	Severity       Severity
	ShortCircuit   bool
	Recommendation string

	rules []rule
}

// Match is one matched rule instance.
type Match struct {
	Category       string
	Pattern        string
	Severity       Severity
	ShortCircuit   bool
	Fragment       string
	Recommendation string
}

// maxFragment bounds how much matched text a Match carries. Enough for an
// auditor to recognize the phrase, never a whole secret payload.
const maxFragment = 60

// Registry holds the ordered category list. Read-only after Load; safe
// for unsynchronized concurrent scans.
type Registry struct {
	categories []*Category
	byID       map[string]*Category
}

// Load compiles the built-in corpus. A pattern that fails to compile is a
// programmer error and panics at load: a partially loaded corpus is a
// silent detection gap, not a degraded mode.
func Load() *Registry {
	r := &Registry{byID: make(map[string]*Category)}

	// Tier 1: short-circuit categories. First match in this tier
	// terminates scanning at CRITICAL.
	r.registerCriticalCommands()
	r.registerSecretRequests()

	// Tier 2: attack categories, language-agnostic.
	r.registerGuardrailBypass()
	r.registerPromptExtraction()
	r.registerSystemPromptMimicry()
	r.registerCallToAction()
	r.registerPhishing()
	r.registerSystemFileAccess()
	r.registerCredentialPathHarvesting()
	r.registerScenarioJailbreak()
	r.registerEmotionalManipulation()
	r.registerIndirectInjection()
	r.registerTokenSmuggling()
	r.registerSafetyBypass()
	r.registerBypassCoaching()
	r.registerMalwareDescription()
	r.registerJSONInjection()
	r.registerAgentSovereignty()
	r.registerAuthorityRecon()
	r.registerCognitiveManipulation()
	r.registerContextHijacking()
	r.registerMultiTurnManipulation()
	r.registerApprovalExpansion()
	r.registerDMSocialEngineering()
	r.registerUrgencyManipulation()

	// Tier 3: language-specific corpora. Attack language is independent
	// of the caller's declared locale, so every corpus is scanned.
	r.registerEnglishCorpus()
	r.registerKoreanCorpus()
	r.registerJapaneseCorpus()
	r.registerChineseCorpus()

	return r
}

// register adds a category and compiles its rules. Rules are name/expr
// pairs so the corpus reads as data.
func (r *Registry) register(c Category, rules [][2]string) {
	cat := &Category{
		ID:             c.ID,
		Lang:           c.Lang,
		Severity:       c.Severity,
		ShortCircuit:   c.ShortCircuit,
		Recommendation: c.Recommendation,
	}
	for _, nr := range rules {
		cat.rules = append(cat.rules, rule{name: nr[0], re: regexp.MustCompile(nr[1])})
	}
	r.categories = append(r.categories, cat)
	r.byID[cat.ID] = cat
}

// Scan evaluates the corpus against both the raw and canonical forms of a
// message. Folding can both create and obscure matches, so both forms are
// always scanned. When a short-circuit category matches, scanning stops
// and the single terminal match is returned with shortCircuit=true;
// otherwise every matching rule across all categories is collected in
// registry order.
func (r *Registry) Scan(raw, canonical string) (matches []Match, shortCircuit bool) {
	for _, cat := range r.categories {
		catMatches := cat.scan(raw, canonical)
		if len(catMatches) == 0 {
			continue
		}
		if cat.ShortCircuit {
			return catMatches[:1], true
		}
		matches = append(matches, catMatches...)
	}
	return matches, false
}

// ScanText evaluates a single text form. Used by the encoding probe to
// re-scan decoded payloads; short-circuit categories still match but do
// not terminate, the caller owns aggregation of decoded findings.
// truncateRunes cuts s to at most max bytes without splitting a rune, so
// CJK fragments stay valid UTF-8 in findings and audit records.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func (r *Registry) ScanText(text string) []Match {
	var matches []Match
	for _, cat := range r.categories {
		matches = append(matches, cat.scan(text, text)...)
	}
	return matches
}

func (c *Category) scan(raw, canonical string) []Match {
	var out []Match
	for _, rl := range c.rules {
		frag := rl.re.FindString(raw)
		if frag == "" && canonical != raw {
			frag = rl.re.FindString(canonical)
		}
		if frag == "" {
			continue
		}
		frag = truncateRunes(frag, maxFragment)
		out = append(out, Match{
			Category:       c.ID,
			Pattern:        rl.name,
			Severity:       c.Severity,
			ShortCircuit:   c.ShortCircuit,
			Fragment:       frag,
			Recommendation: c.Recommendation,
		})
	}
	return out
}

// Categories returns the ordered category list.
func (r *Registry) Categories() []*Category { return r.categories }

// CategoryByID looks up a category, nil if absent.
func (r *Registry) CategoryByID(id string) *Category { return r.byID[id] }

// TotalPatterns returns the number of compiled rules across all categories.
func (r *Registry) TotalPatterns() int {
	n := 0
	for _, cat := range r.categories {
		n += len(cat.rules)
	}
	return n
}

// RuleCount returns the number of rules in one category, 0 if absent.
func (r *Registry) RuleCount(id string) int {
	if cat := r.byID[id]; cat != nil {
		return len(cat.rules)
	}
	return 0
}
