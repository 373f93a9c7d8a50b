package analysis

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacriticals is the Combining Diacritical Marks block, U+0300-U+036F.
var combiningDiacriticals = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize lowercases text, decomposes it canonically and strips
// combining diacritical marks. "João" becomes "joao".
// It never fails; the empty string normalises to itself.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)

	// Transformers keep state, so build a fresh chain per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacriticals)))
	out, _, err := transform.String(t, lower)
	if err != nil {
		// Only reachable on invalid internal state; fall back to a manual pass.
		return stripMarks(norm.NFD.String(lower))
	}
	return out
}

func stripMarks(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(combiningDiacriticals, r) {
			return -1
		}
		return r
	}, s)
}
