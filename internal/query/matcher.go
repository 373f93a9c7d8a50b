package query

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/custodia-labs/sercha-captions/internal/analysis"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// DefaultPatternCacheSize is the number of compiled exact-term patterns kept.
const DefaultPatternCacheSize = 256

// wordBoundary is any rune that is neither a letter nor a digit.
const wordBoundary = `[^\p{L}\p{N}]`

// Matcher evaluates parsed terms against normalised text.
// It is safe for concurrent use.
type Matcher struct {
	patterns *lru.Cache[string, *regexp.Regexp]
}

// NewMatcher creates a matcher caching up to cacheSize compiled patterns.
// A non-positive size uses DefaultPatternCacheSize.
func NewMatcher(cacheSize int) (*Matcher, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultPatternCacheSize
	}
	cache, err := lru.New[string, *regexp.Regexp](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Matcher{patterns: cache}, nil
}

// Match reports whether normalizedText satisfies every term.
// normalizedText must already have passed through analysis.Normalize.
func (m *Matcher) Match(normalizedText string, terms []domain.SearchTerm) bool {
	for _, term := range terms {
		if !m.MatchTerm(normalizedText, term) {
			return false
		}
	}
	return true
}

// MatchTerm evaluates a single term. Free terms match anywhere as a
// substring; exact terms must be delimited by non-letter, non-digit
// runes or the ends of the text.
func (m *Matcher) MatchTerm(normalizedText string, term domain.SearchTerm) bool {
	needle := analysis.Normalize(term.Term)
	if needle == "" {
		return true
	}
	if !term.Exact {
		return strings.Contains(normalizedText, needle)
	}
	words := strings.Fields(needle)
	if len(words) == 0 {
		return true
	}
	// Cheap rejection before the regex.
	if !strings.Contains(normalizedText, words[0]) {
		return false
	}
	return m.pattern(needle).MatchString(normalizedText)
}

func (m *Matcher) pattern(needle string) *regexp.Regexp {
	if re, ok := m.patterns.Get(needle); ok {
		return re
	}
	re := regexp.MustCompile(exactPattern(needle))
	m.patterns.Add(needle, re)
	return re
}

// exactPattern builds a whole-word pattern for a normalised term.
// Words inside a phrase may be separated by any run of whitespace.
func exactPattern(needle string) string {
	words := strings.Fields(needle)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return `(?:^|` + wordBoundary + `)` + strings.Join(words, `\s+`) + `(?:` + wordBoundary + `|$)`
}

// NormalizedFragments returns the normalised text of each term, for use as
// substring prefilters in stores. Phrases contribute each of their words.
func NormalizedFragments(terms []domain.SearchTerm) []string {
	fragments := make([]string, 0, len(terms))
	for _, term := range terms {
		needle := analysis.Normalize(term.Term)
		if needle == "" {
			continue
		}
		if term.Exact {
			fragments = append(fragments, strings.Fields(needle)...)
			continue
		}
		fragments = append(fragments, needle)
	}
	return fragments
}

// RawFragments returns each term's text unchanged, for substring matching
// against raw, unnormalised text.
func RawFragments(terms []domain.SearchTerm) []string {
	fragments := make([]string, 0, len(terms))
	for _, term := range terms {
		fragments = append(fragments, term.Term)
	}
	return fragments
}
