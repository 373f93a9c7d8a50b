package query

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// termRegex matches a single-quoted span, a double-quoted span,
// or a run of non-whitespace, in that order of preference.
var termRegex = regexp.MustCompile(`'([^']*)'|"([^"]*)"|(\S+)`)

// separatorReplacer turns user-entered separators into spaces.
var separatorReplacer = strings.NewReplacer(",", " ", ".", " ")

// Parse splits a raw query into search terms in left-to-right order.
// Commas and periods are separators, never content. Quoted spans keep
// their inner spaces. Empty terms are dropped.
func Parse(raw string) []domain.SearchTerm {
	cleaned := separatorReplacer.Replace(raw)

	terms := []domain.SearchTerm{}
	for _, loc := range termRegex.FindAllStringSubmatchIndex(cleaned, -1) {
		var term domain.SearchTerm
		switch {
		case loc[2] >= 0:
			term = domain.SearchTerm{Term: strings.TrimSpace(cleaned[loc[2]:loc[3]]), Exact: true}
		case loc[4] >= 0:
			term = domain.SearchTerm{Term: strings.TrimSpace(cleaned[loc[4]:loc[5]]), Exact: true}
		default:
			// Unbalanced quote characters are not content.
			term = domain.SearchTerm{Term: strings.Trim(cleaned[loc[6]:loc[7]], `'"`)}
		}
		if term.Term == "" {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}
