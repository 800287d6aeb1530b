// Package normalize canonicalizes message text before pattern scanning.
// Attackers hide trigger phrases behind compatibility forms, zero-width
// characters and alphabet lookalikes; the canonical form makes one regex
// corpus cover all of those spellings.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Result carries the canonical text plus counters the behavioral layer
// consumes. Canonical equals the input when nothing needed folding.
type Result struct {
	Canonical      string
	InvisibleCount int
	HomoglyphCount int
	// LowConfidence is set when the input was not valid UTF-8 and the
	// raw bytes were passed through untouched.
	LowConfidence bool
}

// Changed reports whether canonicalization altered the text.
func (r Result) Changed() bool { return r.InvisibleCount > 0 || r.HomoglyphCount > 0 }

// homoglyphs maps alphabet lookalikes to their ASCII targets. NFKC folds
// compatibility forms (fullwidth, mathematical bold, roman numerals) on
// its own; this table covers the cross-script confusables NFKC leaves
// alone, mostly Cyrillic and Greek.
var homoglyphs = map[rune]rune{
	// Cyrillic
	'а': 'a', 'е': 'e', 'о': 'o', 'р': 'p', 'с': 'c', 'у': 'y', 'х': 'x',
	'А': 'A', 'В': 'B', 'С': 'C', 'Е': 'E', 'Н': 'H', 'К': 'K', 'М': 'M',
	'О': 'O', 'Р': 'P', 'Т': 'T', 'Х': 'X', 'і': 'i', 'ї': 'i',
	// Greek
	'α': 'a', 'β': 'b', 'ο': 'o', 'ρ': 'p', 'τ': 't', 'υ': 'u', 'ν': 'v',
	'Α': 'A', 'Β': 'B', 'Ε': 'E', 'Η': 'H', 'Ι': 'I', 'Κ': 'K', 'Μ': 'M',
	'Ν': 'N', 'Ο': 'O', 'Ρ': 'P', 'Τ': 'T', 'Υ': 'Y', 'Χ': 'X',
	// IPA and other confusables
	'ɑ': 'a', 'ɡ': 'g', 'ɩ': 'i', 'ʀ': 'r', 'ʏ': 'y', 'ℓ': 'l',
}

// invisible marks characters that carry no glyph and are removed from the
// canonical form. Format-class runes (Cf) cover zero-width characters,
// BOM, soft hyphen and directional controls.
func invisible(r rune) bool {
	if unicode.Is(unicode.Cf, r) {
		return true
	}
	switch r {
	case '⁢', '⁣', '⁤', '͏',
		'ᅟ', 'ᅠ', '឴', '឵', '᠎':
		return true
	}
	return false
}

// Normalize produces the canonical form of text: NFKC, invisible
// characters stripped, homoglyphs folded to ASCII. The operation is
// idempotent; Normalize(r.Canonical) returns r.Canonical unchanged.
// Invalid UTF-8 is passed through raw with LowConfidence set, so the
// pattern layer still sees the original bytes.
func Normalize(text string) Result {
	if !utf8.ValidString(text) {
		return Result{Canonical: text, LowConfidence: true}
	}

	folded := norm.NFKC.String(text)

	var b strings.Builder
	b.Grow(len(folded))
	res := Result{}
	for _, r := range folded {
		if invisible(r) {
			res.InvisibleCount++
			continue
		}
		if target, ok := homoglyphs[r]; ok {
			res.HomoglyphCount++
			b.WriteRune(target)
			continue
		}
		b.WriteRune(r)
	}
	// Stripping a format character can expose a base letter + combining
	// mark pair NFKC could not compose on the first pass. Re-composing
	// here keeps Normalize idempotent.
	res.Canonical = norm.NFC.String(b.String())
	return res
}
