package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerseRecord_Reference(t *testing.T) {
	v := VerseRecord{Book: 40, Chapter: 5, Verse: 13}
	assert.Equal(t, "40.5.13", v.Reference())
}

func TestVerseRecord_Less(t *testing.T) {
	verses := []VerseRecord{
		{Book: 40, Chapter: 5, Verse: 13},
		{Book: 1, Chapter: 2, Verse: 1},
		{Book: 40, Chapter: 1, Verse: 20},
		{Book: 40, Chapter: 5, Verse: 2},
	}

	sort.Slice(verses, func(i, j int) bool { return verses[i].Less(verses[j]) })

	refs := make([]string, len(verses))
	for i := range verses {
		refs[i] = verses[i].Reference()
	}
	assert.Equal(t, []string{"1.2.1", "40.1.20", "40.5.2", "40.5.13"}, refs)
}

func TestParseVerseSchema(t *testing.T) {
	s, err := ParseVerseSchema("legacy")
	require.NoError(t, err)
	assert.Equal(t, VerseSchemaLegacy, s)

	s, err = ParseVerseSchema("NORMALIZED")
	require.NoError(t, err)
	assert.Equal(t, VerseSchemaNormalized, s)

	_, err = ParseVerseSchema("auto")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
