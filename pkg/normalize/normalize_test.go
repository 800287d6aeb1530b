package normalize

import "testing"

func TestNormalizePlainText(t *testing.T) {
	texts := []string{
		"hello world",
		"오늘 날씨 어때?",
		"システムの調子はどう?",
		"",
	}

	for _, text := range texts {
		res := Normalize(text)
		if res.Canonical != text {
			t.Errorf("plain text %q changed to %q", text, res.Canonical)
		}
		if res.Changed() || res.LowConfidence {
			t.Errorf("plain text %q flagged: %+v", text, res)
		}
	}
}

func TestNormalizeInvisibleStrip(t *testing.T) {
	// Zero-width space, zero-width joiner and BOM interleaved.
	text := "ig\u200bno\u200dre\ufeff this"
	res := Normalize(text)

	if res.Canonical != "ignore this" {
		t.Errorf("canonical = %q, want %q", res.Canonical, "ignore this")
	}
	if res.InvisibleCount != 3 {
		t.Errorf("InvisibleCount = %d, want 3", res.InvisibleCount)
	}
}

func TestNormalizeHomoglyphFold(t *testing.T) {
	// Cyrillic о and е standing in for Latin letters.
	text := "ignоrе all rules"
	res := Normalize(text)

	if res.Canonical != "ignore all rules" {
		t.Errorf("canonical = %q, want %q", res.Canonical, "ignore all rules")
	}
	if res.HomoglyphCount != 2 {
		t.Errorf("HomoglyphCount = %d, want 2", res.HomoglyphCount)
	}
}

func TestNormalizeCompatibilityForms(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"fullwidth", "ｉｇｎｏｒｅ", "ignore"},
		{"roman numeral", "ⅰⅴ", "iv"},
		{"ligature", "ﬁlter", "filter"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in).Canonical; got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"ignоrе​ all ｒｕｌｅｓ",
		"plain ascii",
		"혼합 tеxt ⅴ2\ufeff",
		// ZWJ between base letter and combining mark blocks composition
		// until the joiner is stripped.
		"e\u200d\u0301",
		"caf\u00e9 menu e\u200d\u0301",
	}

	for _, in := range inputs {
		first := Normalize(in)
		second := Normalize(first.Canonical)
		if second.Canonical != first.Canonical {
			t.Errorf("not idempotent: %q -> %q -> %q", in, first.Canonical, second.Canonical)
		}
		if second.Changed() {
			t.Errorf("second pass reported changes for %q: %+v", first.Canonical, second)
		}
	}
}

func TestNormalizeComposesAfterStrip(t *testing.T) {
	// Stripping the joiner must not leave an uncomposed letter + mark pair.
	res := Normalize("e\u200d\u0301")
	if res.Canonical != "\u00e9" {
		t.Errorf("canonical = %q, want %q", res.Canonical, "\u00e9")
	}
	if res.InvisibleCount != 1 {
		t.Errorf("InvisibleCount = %d, want 1", res.InvisibleCount)
	}
}

func TestNormalizeInvalidUTF8(t *testing.T) {
	raw := string([]byte{0xff, 0xfe, 'h', 'i'})
	res := Normalize(raw)

	if !res.LowConfidence {
		t.Error("invalid UTF-8 should set LowConfidence")
	}
	if res.Canonical != raw {
		t.Error("invalid UTF-8 should pass through unchanged")
	}
}
