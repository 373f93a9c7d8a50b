package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-captions/internal/analysis"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(8)
	require.NoError(t, err)
	return m
}

func TestMatcher_ExactRespectsWordBoundaries(t *testing.T) {
	m := newTestMatcher(t)
	sal := domain.SearchTerm{Term: "sal", Exact: true}

	assert.True(t, m.MatchTerm(analysis.Normalize("Gosto de sal na comida"), sal))
	assert.False(t, m.MatchTerm(analysis.Normalize("A salvação é importante"), sal))
}

func TestMatcher_FreeMatchesSubstring(t *testing.T) {
	m := newTestMatcher(t)
	sal := domain.SearchTerm{Term: "sal"}

	assert.True(t, m.MatchTerm(analysis.Normalize("A salvação é importante"), sal))
	assert.True(t, m.MatchTerm(analysis.Normalize("Gosto de sal na comida"), sal))
	assert.False(t, m.MatchTerm(analysis.Normalize("Sem tempero"), sal))
}

func TestMatcher_FoldsDiacriticsInTerms(t *testing.T) {
	m := newTestMatcher(t)

	text := analysis.Normalize("A salvação é importante")
	assert.True(t, m.MatchTerm(text, domain.SearchTerm{Term: "SALVACAO", Exact: true}))
	assert.True(t, m.MatchTerm(text, domain.SearchTerm{Term: "salvação"}))
}

func TestMatcher_ExactAtTextEdgesAndPunctuation(t *testing.T) {
	m := newTestMatcher(t)
	term := domain.SearchTerm{Term: "sal", Exact: true}

	assert.True(t, m.MatchTerm("sal", term))
	assert.True(t, m.MatchTerm("sal.", term))
	assert.True(t, m.MatchTerm("(sal)", term))
	assert.False(t, m.MatchTerm("sal2", term))
	assert.False(t, m.MatchTerm("insal", term))
}

func TestMatcher_ExactPhrase(t *testing.T) {
	m := newTestMatcher(t)
	phrase := domain.SearchTerm{Term: "sal da terra", Exact: true}

	assert.True(t, m.MatchTerm(analysis.Normalize("Vós sois o sal da terra;"), phrase))
	assert.True(t, m.MatchTerm("vos sois o sal\nda  terra", phrase))
	assert.False(t, m.MatchTerm(analysis.Normalize("o sal da terrinha"), phrase))
	assert.False(t, m.MatchTerm(analysis.Normalize("a terra e o sal"), phrase))
}

func TestMatcher_PhraseSpansLineBreaks(t *testing.T) {
	m := newTestMatcher(t)
	phrase := domain.SearchTerm{Term: "sal da terra", Exact: true}

	assert.True(t, m.MatchTerm("sal\n\nda   terra", phrase))
	assert.True(t, m.MatchTerm("o sal\tda\r\nterra", phrase))
	assert.False(t, m.MatchTerm("sal, da terra", phrase))
	assert.False(t, m.MatchTerm("salda terra", phrase))
}

func TestMatcher_EscapesRegexCharacters(t *testing.T) {
	m := newTestMatcher(t)

	assert.True(t, m.MatchTerm("preco (c++) aqui", domain.SearchTerm{Term: "c++", Exact: true}))
	assert.False(t, m.MatchTerm("abc", domain.SearchTerm{Term: "a.c", Exact: true}))
}

func TestMatcher_AndSemantics(t *testing.T) {
	m := newTestMatcher(t)
	terms := Parse("'sal' terra")

	assert.True(t, m.Match(analysis.Normalize("Vós sois o sal da terra"), terms))
	assert.False(t, m.Match(analysis.Normalize("Gosto de sal na comida"), terms))
	assert.False(t, m.Match(analysis.Normalize("Nada aqui"), terms))
	assert.True(t, m.Match("qualquer texto", nil))
}

func TestMatcher_TermOrderDoesNotMatter(t *testing.T) {
	m := newTestMatcher(t)
	text := analysis.Normalize("Vós sois o sal da terra")

	assert.Equal(t,
		m.Match(text, Parse("terra 'sal'")),
		m.Match(text, Parse("'sal' terra")))
}

func TestMatcher_CachesPatterns(t *testing.T) {
	m := newTestMatcher(t)
	term := domain.SearchTerm{Term: "sal", Exact: true}

	m.MatchTerm("sal", term)
	m.MatchTerm("sal", term)
	assert.Equal(t, 1, m.patterns.Len())
}

func TestNewMatcher_DefaultSize(t *testing.T) {
	m, err := NewMatcher(0)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestNormalizedFragments(t *testing.T) {
	terms := Parse(`'Sal da Terra' Salvação`)

	assert.Equal(t, []string{"sal", "da", "terra", "salvacao"}, NormalizedFragments(terms))
	assert.Equal(t, []string{"Sal da Terra", "Salvação"}, RawFragments(terms))
}
