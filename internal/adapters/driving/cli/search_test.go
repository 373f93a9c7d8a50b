package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestRuntime(t)

	_, err := execute(t, "search")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_Flags(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)

	flag = searchCmd.Flags().Lookup("corpus")
	require.NotNil(t, flag)
	assert.Equal(t, "subtitles", flag.DefValue)
}

func TestSearchCmd_Subtitles(t *testing.T) {
	setupTestRuntime(t)

	out, err := execute(t, "search", "'sal'")

	require.NoError(t, err)
	assert.Contains(t, out, "Results:")
	assert.Contains(t, out, "[1] vid-1")
	assert.NotContains(t, out, "vid-2")
}

func TestSearchCmd_Verses(t *testing.T) {
	setupTestRuntime(t)

	out, err := execute(t, "search", "--corpus", "verses", "terra")

	require.NoError(t, err)
	assert.Contains(t, out, "ARA 40.5.13")
	assert.Contains(t, out, "Vós sois o sal da terra")
}

func TestSearchCmd_JSON(t *testing.T) {
	setupTestRuntime(t)

	out, err := execute(t, "search", "--json", "sal")

	require.NoError(t, err)
	var results []domain.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results, 2)
}

func TestSearchCmd_NoResults(t *testing.T) {
	setupTestRuntime(t)

	out, err := execute(t, "search", "pastor")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_Errors(t *testing.T) {
	setupTestRuntime(t)

	_, err := execute(t, "search", "--corpus", "hymns", "sal")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = execute(t, "search", "--corpus", "subtitles", " , ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "curto", snippet("curto", 10))
	assert.Equal(t, "açã...", snippet("açãozinha", 3))
	assert.Equal(t, "ação...", snippet("açãozinha", 4))
}
