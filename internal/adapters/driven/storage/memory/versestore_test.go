package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

func seededVerseStore(schema domain.VerseSchema) *VerseStore {
	store := NewVerseStore(schema)
	store.Add(
		domain.VerseRecord{Version: "ARC", Book: 40, Chapter: 5, Verse: 14, Text: "Vós sois a luz do mundo", NormalizedText: "vos sois a luz do mundo"},
		domain.VerseRecord{Version: "ARC", Book: 40, Chapter: 5, Verse: 13, Text: "Vós sois o sal da terra", NormalizedText: "vos sois o sal da terra"},
		domain.VerseRecord{Version: "ARC", Book: 19, Chapter: 23, Verse: 1, Text: "O Senhor é o meu pastor", NormalizedText: "o senhor e o meu pastor"},
		domain.VerseRecord{Version: "NVI", Book: 40, Chapter: 5, Verse: 13, Text: "Vocês são o sal da terra", NormalizedText: "voces sao o sal da terra"},
	)
	return store
}

func TestVerseStore_Versions(t *testing.T) {
	store := seededVerseStore(domain.VerseSchemaLegacy)

	versions, err := store.Versions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ARC", "NVI"}, versions)
}

func TestVerseStore_SearchRaw_OrderedAndLimited(t *testing.T) {
	store := seededVerseStore(domain.VerseSchemaLegacy)
	ctx := context.Background()

	verses, err := store.SearchRaw(ctx, "ARC", []string{"sois"}, 0)
	require.NoError(t, err)
	require.Len(t, verses, 2)
	assert.Equal(t, "40.5.13", verses[0].Reference())
	assert.Equal(t, "40.5.14", verses[1].Reference())

	limited, err := store.SearchRaw(ctx, "ARC", []string{"sois"}, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestVerseStore_SearchRaw_AllFragmentsRequired(t *testing.T) {
	store := seededVerseStore(domain.VerseSchemaLegacy)

	verses, err := store.SearchRaw(context.Background(), "ARC", []string{"SAL", "terra"}, 50)
	require.NoError(t, err)
	require.Len(t, verses, 1)
	assert.Equal(t, 13, verses[0].Verse)
}

func TestVerseStore_SearchRaw_UnknownVersion(t *testing.T) {
	store := seededVerseStore(domain.VerseSchemaLegacy)

	_, err := store.SearchRaw(context.Background(), "KJV", []string{"sal"}, 50)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerseStore_SearchNormalized(t *testing.T) {
	store := seededVerseStore(domain.VerseSchemaNormalized)

	verses, err := store.SearchNormalized(context.Background(), "NVI", []string{"voces", "sal"})
	require.NoError(t, err)
	require.Len(t, verses, 1)
	assert.Equal(t, "NVI", verses[0].Version)
}

func TestVerseStore_SearchNormalized_LegacySchema(t *testing.T) {
	store := seededVerseStore(domain.VerseSchemaLegacy)

	_, err := store.SearchNormalized(context.Background(), "ARC", []string{"sal"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}
