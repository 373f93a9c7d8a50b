package analysis

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinTokenLength is the minimum number of runes a term must have.
const MinTokenLength = 2

// separatorRegex matches maximal runs of anything that is not a letter or digit.
var separatorRegex = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Tokenizer versions. Persisted documents record the version used.
const (
	// VersionLengthOnly normalises, splits and drops short words.
	VersionLengthOnly = 1

	// VersionStopwords adds the stopword filter.
	VersionStopwords = 2

	// CurrentVersion is the version new documents are tokenised with.
	CurrentVersion = VersionStopwords
)

// Tokenize returns the deduplicated index terms of text under CurrentVersion.
// Terms keep first-seen order. Text without qualifying words yields an empty slice.
func Tokenize(text string) []string {
	return tokenize(text, true)
}

// TokenizeVersion tokenises text with the rules of a specific version.
func TokenizeVersion(version int, text string) ([]string, error) {
	switch version {
	case VersionLengthOnly:
		return tokenize(text, false), nil
	case VersionStopwords:
		return tokenize(text, true), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer version %d", version)
	}
}

func tokenize(text string, filterStopwords bool) []string {
	tokens := []string{}
	if text == "" {
		return tokens
	}

	cleaned := separatorRegex.ReplaceAllString(Normalize(text), " ")

	seen := make(map[string]struct{})
	for _, word := range strings.Split(cleaned, " ") {
		if utf8.RuneCountInString(word) < MinTokenLength {
			continue
		}
		if filterStopwords && IsStopword(word) {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		tokens = append(tokens, word)
	}
	return tokens
}
